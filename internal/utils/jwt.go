// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/workstreamhq/credvault/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for a service caller.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the caller identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateJWTToken(issuer, callerID string, tokenDuration time.Duration, signKey string) (models.ServiceToken, error) {
	if issuer == "" || callerID == "" || tokenDuration == 0 || signKey == "" {
		return models.ServiceToken{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   callerID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.ServiceToken{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.ServiceToken{Token: token, SignedString: tokenString, CallerID: callerID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.ServiceToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.ServiceToken{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.ServiceToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	callerID, err := token.Claims.GetSubject()
	if err != nil {
		return models.ServiceToken{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if callerID == "" {
		return models.ServiceToken{}, errors.New("empty subject error")
	}

	return models.ServiceToken{Token: token, CallerID: callerID}, nil
}

// ParseBearerToken extracts the token part of an `Authorization: Bearer <token>` header.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
