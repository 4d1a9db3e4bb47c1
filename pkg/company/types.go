// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type RedeemInviteRequest struct {
	Code string `json:"code" validate:"required"`
}

type AssignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}
