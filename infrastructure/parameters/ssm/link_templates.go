package ssm

import (
	"context"
	"strings"

	"events-api/application/ports"
	pkgerrors "events-api/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"
)

// Client is the subset of the SSM API used to read link templates
type Client interface {
	GetParametersByPath(ctx context.Context, params *awsssm.GetParametersByPathInput, optFns ...func(*awsssm.Options)) (*awsssm.GetParametersByPathOutput, error)
}

// LinkTemplateStore reads link templates from SSM Parameter Store. Every
// parameter under /<prefix>/<branch>/ is one template: the last path segment
// is the link name and the value is the base URL.
type LinkTemplateStore struct {
	client Client
	path   string
	logger *zap.Logger
}

var _ ports.LinkTemplateSource = (*LinkTemplateStore)(nil)

// NewLinkTemplateStore creates a store scoped to a deployment branch
func NewLinkTemplateStore(client Client, prefix, branch string, logger *zap.Logger) *LinkTemplateStore {
	return &LinkTemplateStore{
		client: client,
		path:   BranchPath(prefix, branch),
		logger: logger,
	}
}

// BranchPath returns the parameter path for a deployment branch, e.g.
// BranchPath("drem", "main") == "/drem/main/".
func BranchPath(prefix, branch string) string {
	prefix = strings.Trim(prefix, "/")
	branch = strings.Trim(branch, "/")
	if prefix == "" {
		return "/" + branch + "/"
	}
	return "/" + prefix + "/" + branch + "/"
}

// Path returns the parameter path this store reads
func (s *LinkTemplateStore) Path() string {
	return s.path
}

// LinkTemplates reads all parameters under the branch path, recursively
func (s *LinkTemplateStore) LinkTemplates(ctx context.Context) ([]ports.LinkTemplate, error) {
	paginator := awsssm.NewGetParametersByPathPaginator(s.client, &awsssm.GetParametersByPathInput{
		Path:      aws.String(s.path),
		Recursive: aws.Bool(true),
	})

	var templates []ports.LinkTemplate
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			s.logger.Error("Failed to read link templates",
				zap.Error(err),
				zap.String("path", s.path),
			)
			return nil, pkgerrors.NewExternalError("ssm", err).
				WithDetail("path", s.path)
		}

		for _, p := range page.Parameters {
			name := aws.ToString(p.Name)
			templates = append(templates, ports.LinkTemplate{
				Name:    name[strings.LastIndex(name, "/")+1:],
				BaseURL: aws.ToString(p.Value),
			})
		}
	}

	s.logger.Debug("Read link templates",
		zap.String("path", s.path),
		zap.Int("count", len(templates)),
	)
	return templates, nil
}
