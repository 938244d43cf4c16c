package service

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// AdminProbe fetches the admin user listing and logs it. It always answers zero.
type AdminProbe struct {
	backend Backend
	log     logrus.FieldLogger
}

func NewAdminProbe(b Backend, log logrus.FieldLogger) *AdminProbe {
	return &AdminProbe{backend: b, log: log}
}

func (a *AdminProbe) Name() string { return ListUsers }

func (a *AdminProbe) Run(ctx context.Context, _ []string) (*big.Int, error) {
	body, err := a.backend.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	a.log.WithFields(logrus.Fields{
		"function": ListUsers,
		"response": string(body),
	}).Info("users get")
	return new(big.Int), nil
}
