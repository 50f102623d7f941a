package webhook

import (
	"rental-ops/internal/inbox"
	"rental-ops/pkg/log"
)

const (
	HeaderSignature = "X-Signature-256"
	maxBodyBytes    = 1 << 20
)

type Handler struct {
	inboxUC  inbox.UseCase
	security *SecurityValidator
	l        log.Logger
}

func NewHandler(inboxUC inbox.UseCase, securityConfig SecurityConfig, l log.Logger) *Handler {
	return &Handler{
		inboxUC:  inboxUC,
		security: NewSecurityValidator(securityConfig),
		l:        l,
	}
}
