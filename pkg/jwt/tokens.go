package jwt

import "time"

// IssueAccessToken signs an access token for subject with the service's
// access TTL. Meta carries optional application data (role, tenant, etc).
func (s *Service) IssueAccessToken(subject string, meta map[string]string) (string, error) {
	return s.issue(subject, meta, TokenTypeAccess, s.accessTTL)
}

// IssueRefreshToken signs a refresh token for subject with the service's
// refresh TTL.
func (s *Service) IssueRefreshToken(subject string, meta map[string]string) (string, error) {
	return s.issue(subject, meta, TokenTypeRefresh, s.refreshTTL)
}

// IssueTokenPair signs both tokens for subject, the usual login response.
func (s *Service) IssueTokenPair(subject string, meta map[string]string) (TokenPair, error) {
	access, err := s.IssueAccessToken(subject, meta)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := s.IssueRefreshToken(subject, meta)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) issue(subject string, meta map[string]string, typ TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	return s.Generate(Claims{
		StandardClaims: StandardClaims{
			Subject:   subject,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
		TokenType: typ,
		Meta:      meta,
	})
}

// VerifyAccessToken parses tokenString and ensures it is a live access token.
func (s *Service) VerifyAccessToken(tokenString string) (Claims, error) {
	return s.verify(tokenString, TokenTypeAccess)
}

// VerifyRefreshToken parses tokenString and ensures it is a live refresh token.
func (s *Service) VerifyRefreshToken(tokenString string) (Claims, error) {
	return s.verify(tokenString, TokenTypeRefresh)
}

func (s *Service) verify(tokenString string, want TokenType) (Claims, error) {
	var claims Claims
	if err := s.Parse(tokenString, &claims); err != nil {
		return Claims{}, err
	}
	if claims.TokenType != want {
		return Claims{}, ErrWrongTokenType
	}
	return claims, nil
}

// RefreshAccessToken exchanges a valid refresh token for a fresh access
// token. The subject and meta carry over; temporal claims are reissued.
func (s *Service) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	return s.IssueAccessToken(claims.Subject, claims.Meta)
}
