package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"events-api/application/ports"
	"events-api/domain/core/entities"
	"events-api/domain/core/valueobjects"
	pkgerrors "events-api/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

// Client is the subset of the DynamoDB API the event repository uses
type Client interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// EventRepository implements ports.EventRepository on a single DynamoDB
// table keyed by eventId.
type EventRepository struct {
	client    Client
	tableName string
	logger    *zap.Logger
}

var _ ports.EventRepository = (*EventRepository)(nil)

// NewEventRepository creates a new EventRepository
func NewEventRepository(client Client, tableName string, logger *zap.Logger) *EventRepository {
	return &EventRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// List scans the whole table
func (r *EventRepository) List(ctx context.Context) ([]entities.Event, error) {
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	result := make([]entities.Event, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			r.logger.Error("Failed to scan events", zap.Error(err), zap.String("table", r.tableName))
			return nil, storeError("Scan", err)
		}

		var items []map[string]interface{}
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal events: %w", err)
		}
		for _, item := range items {
			result = append(result, entities.Event(item))
		}
	}

	r.logger.Debug("Listed events", zap.Int("count", len(result)))
	return result, nil
}

// Create stores a new event, refusing to overwrite an existing eventId
func (r *EventRepository) Create(ctx context.Context, event entities.Event) error {
	id, err := event.ID()
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}

	item, err := attributevalue.MarshalMap(map[string]interface{}(event))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name(entities.AttrEventID))).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build expression: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return pkgerrors.NewConflictError(fmt.Sprintf("event %s already exists", id))
		}
		r.logger.Error("Failed to create event", zap.Error(err), zap.String("eventId", id.String()))
		return storeError("PutItem", err)
	}

	return nil
}

// Update applies fields to an existing event and returns the new image
func (r *EventRepository) Update(ctx context.Context, id valueobjects.EventID, fields *valueobjects.FieldUpdate) (entities.Event, error) {
	upd, err := BuildUpdateExpression(fields)
	if err != nil {
		return nil, err
	}

	cond, err := upd.ExistsCondition(entities.AttrEventID)
	if err != nil {
		return nil, err
	}

	values, err := attributevalue.MarshalMap(upd.ValueBindings)
	if err != nil {
		return nil, pkgerrors.NewValidationError(fmt.Sprintf("unsupported field value: %v", err))
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       eventKey(id),
		UpdateExpression:          aws.String(upd.Clause),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  upd.NameBindings,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, pkgerrors.NewNotFoundError(fmt.Sprintf("event %s", id))
		}
		r.logger.Error("Failed to update event",
			zap.Error(err),
			zap.String("eventId", id.String()),
			zap.String("updateExpression", upd.Clause),
		)
		return nil, storeError("UpdateItem", err)
	}

	var updated map[string]interface{}
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated event: %w", err)
	}

	return entities.Event(updated), nil
}

// Delete removes an event by key. It reports whether an item was present.
func (r *EventRepository) Delete(ctx context.Context, id valueobjects.EventID) (bool, error) {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          eventKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		r.logger.Error("Failed to delete event", zap.Error(err), zap.String("eventId", id.String()))
		return false, storeError("DeleteItem", err)
	}

	return len(out.Attributes) > 0, nil
}

func eventKey(id valueobjects.EventID) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		entities.AttrEventID: &types.AttributeValueMemberS{Value: id.String()},
	}
}

// storeError wraps a DynamoDB failure, keeping the service error code when
// one is available.
func storeError(operation string, err error) *pkgerrors.AppError {
	appErr := pkgerrors.NewDatabaseError(operation, err)

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		appErr.WithCode(apiErr.ErrorCode())
	}
	return appErr
}
