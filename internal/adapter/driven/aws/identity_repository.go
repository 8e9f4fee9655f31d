package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// STSAPI is the subset of the STS client used to resolve the account.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// IdentityRepositoryImpl implementa o IdentityRepository sobre o STS.
type IdentityRepositoryImpl struct {
	client STSAPI
}

func NewIdentityRepository(client STSAPI) *IdentityRepositoryImpl {
	return &IdentityRepositoryImpl{client: client}
}

func (r *IdentityRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	result, err := r.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID: %w", err)
	}
	return aws.ToString(result.Account), nil
}
