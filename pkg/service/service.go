package service

import (
	"context"
	"math/big"
	"sort"

	"balance_gateway/models"
	"balance_gateway/pkg/backend"
	"balance_gateway/pkg/repository"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	GetBalance               = "getBalance"
	GetScaledBalance         = "getScaledBalance"
	DecrementUserRealBalance = "decrementUserRealBalance"
	IncrementUserRealBalance = "incrementUserRealBalance"
	ListUsers                = "listUsers"
)

// Backend is the subset of the stock backend the functions call.
type Backend interface {
	GetUserStock(ctx context.Context, address, id string) (models.BalanceRecord, error)
	Decrement(ctx context.Context, in models.AdjustRequest) (models.AdjustmentResult, error)
	Increment(ctx context.Context, in models.AdjustRequest) (models.AdjustmentResult, error)
	ListUsers(ctx context.Context) ([]byte, error)
}

// Function is one oracle-callable handler. Run returns the unsigned amount to encode;
// soft failures return zero with a nil error.
type Function interface {
	Name() string
	Run(ctx context.Context, args []string) (*big.Int, error)
}

type Service struct {
	Balance       *BalanceReader
	ScaledBalance *BalanceReader
	Decrement     *Decrementer
	Increment     *Incrementer
	Admin         *AdminProbe

	functions map[string]Function
}

// NewService builds the backend client and every function on top of it.
// It fails with backend.ErrMissingCredential before any request when the token is empty.
func NewService(cfg backend.Config, repos *repository.Repository, log logrus.FieldLogger) (*Service, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	client, err := backend.NewClient(cfg, log)
	if err != nil {
		return nil, err
	}
	return NewServiceWithBackend(client, repos, log), nil
}

func NewServiceWithBackend(b Backend, repos *repository.Repository, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if repos == nil {
		repos = repository.NewRepository(nil)
	}
	s := &Service{
		Balance:       NewBalanceReader(GetBalance, ModeRaw, b, log),
		ScaledBalance: NewBalanceReader(GetScaledBalance, ModeScaled, b, log),
		Decrement:     NewDecrementer(b, repos.Reconciliation, log),
		Increment:     NewIncrementer(b, log),
		Admin:         NewAdminProbe(b, log),
	}
	s.functions = make(map[string]Function)
	for _, fn := range []Function{s.Balance, s.ScaledBalance, s.Decrement, s.Increment, s.Admin} {
		s.functions[fn.Name()] = fn
	}
	return s
}

func (s *Service) Lookup(name string) (Function, error) {
	fn, ok := s.functions[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFunction, "%q", name)
	}
	return fn, nil
}

// Names lists the registered functions in alphabetical order.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.functions))
	for name := range s.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Service) Invoke(ctx context.Context, name string, args []string) (*big.Int, error) {
	fn, err := s.Lookup(name)
	if err != nil {
		return nil, err
	}
	return fn.Run(ctx, args)
}
