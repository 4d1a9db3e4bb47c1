// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit-relevant events on a dedicated structured channel.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

// AuthorizationDenied records a failed capability check.
func (s *SecurityLogger) AuthorizationDenied(userID, companyID, operation string) {
	s.l.Warn("authorization denied",
		zap.String("event", "authz.denied"),
		zap.String("user_id", userID),
		zap.String("company_id", companyID),
		zap.String("operation", operation),
	)
}

// InviteIssued records the issuance of a company invite code.
func (s *SecurityLogger) InviteIssued(companyID, issuerID string) {
	s.l.Info("invite issued",
		zap.String("event", "invite.issued"),
		zap.String("company_id", companyID),
		zap.String("issuer_id", issuerID),
	)
}

// InviteRedeemed records a successful invite redemption.
func (s *SecurityLogger) InviteRedeemed(companyID, userID string) {
	s.l.Info("invite redeemed",
		zap.String("event", "invite.redeemed"),
		zap.String("company_id", companyID),
		zap.String("user_id", userID),
	)
}
