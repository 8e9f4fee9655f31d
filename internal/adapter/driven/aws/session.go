package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Session carrega e mantém em cache a configuração AWS de um perfil/região.
// Perfil vazio usa a cadeia padrão de credenciais (variáveis de ambiente, role da função, etc).
type Session struct {
	profile string
	region  string

	mu  sync.Mutex
	cfg *aws.Config
}

// NewSession cria uma nova sessão para o perfil e a região informados.
func NewSession(profile, region string) *Session {
	return &Session{profile: profile, region: region}
}

// Config retorna a configuração AWS, carregando-a na primeira chamada.
func (s *Session) Config(ctx context.Context) (aws.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg != nil {
		return *s.cfg, nil
	}

	var opts []func(*config.LoadOptions) error
	if s.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(s.profile))
	}
	if s.region != "" {
		opts = append(opts, config.WithRegion(s.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		if s.profile != "" {
			return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", s.profile, err)
		}
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s.cfg = &cfg
	return cfg, nil
}

// Region retorna a região efetiva após o carregamento da configuração.
func (s *Session) Region(ctx context.Context) (string, error) {
	cfg, err := s.Config(ctx)
	if err != nil {
		return "", err
	}
	return cfg.Region, nil
}

// Repositories bundles the adapters built from one session.
type Repositories struct {
	Inventory *InventoryRepositoryImpl
	Storage   *StorageRepositoryImpl
	Identity  *IdentityRepositoryImpl
}

// NewRepositories cria os repositórios EC2, S3 e STS a partir da mesma configuração.
func (s *Session) NewRepositories(ctx context.Context) (*Repositories, error) {
	cfg, err := s.Config(ctx)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Inventory: NewInventoryRepository(ec2.NewFromConfig(cfg)),
		Storage:   NewStorageRepository(s3.NewFromConfig(cfg)),
		Identity:  NewIdentityRepository(sts.NewFromConfig(cfg)),
	}, nil
}
