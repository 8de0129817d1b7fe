package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/qawafel/crm-backend/api/responses"
	"github.com/qawafel/crm-backend/api/validators"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
)

// RateLimiterStore is the counter backend; pkg/redis.Client satisfies it.
type RateLimiterStore interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
	RetryAfter(ctx context.Context, scope string) (time.Duration, error)
}

// IntakeRateLimitPolicy throttles the public form endpoints per client IP
// and per form token.
type IntakeRateLimitPolicy struct {
	window     time.Duration
	ipLimit    int
	tokenLimit int
}

func NewIntakeRateLimitPolicy(window time.Duration, ipLimit, tokenLimit int) IntakeRateLimitPolicy {
	return IntakeRateLimitPolicy{window: window, ipLimit: ipLimit, tokenLimit: tokenLimit}
}

func (p IntakeRateLimitPolicy) enabled() bool {
	return p.window > 0 && (p.ipLimit > 0 || p.tokenLimit > 0)
}

func (p IntakeRateLimitPolicy) ipScope(ip string) string {
	if ip == "" {
		return ""
	}
	return fmt.Sprintf("intake:ip:%s", ip)
}

func (p IntakeRateLimitPolicy) tokenScope(hash string) string {
	return fmt.Sprintf("intake:token:%s", hash)
}

// IntakeRateLimit enforces the policy. A nil store disables it, which is
// the case when redis is not configured.
func IntakeRateLimit(policy IntakeRateLimitPolicy, store RateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			if policy.ipLimit > 0 {
				if scope := policy.ipScope(ip); scope != "" {
					if allowed, count, err := store.FixedWindowAllow(ctx, scope, int64(policy.ipLimit), policy.window); err != nil {
						responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
						return
					} else if !allowed {
						respondRateLimited(ctx, logg, w, store, policy, scope, ip, "", count, policy.ipLimit)
						return
					}
				}
			}

			if policy.tokenLimit > 0 {
				token, err := requestToken(r)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read request"))
					return
				}
				if token != "" {
					hash := hashValue(token)
					scope := policy.tokenScope(hash)
					if allowed, count, err := store.FixedWindowAllow(ctx, scope, int64(policy.tokenLimit), policy.window); err != nil {
						responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
						return
					} else if !allowed {
						respondRateLimited(ctx, logg, w, store, policy, scope, "", hash, count, policy.tokenLimit)
						return
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requestToken reads the form token from the query string or, for posts,
// from the JSON body, which is restored for the next handler.
func requestToken(r *http.Request) (string, error) {
	if token := validators.QueryString(r, "token", 0); token != "" {
		return token, nil
	}
	if r.Body == nil || r.Method == http.MethodGet {
		return "", nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, validators.MaxBodyBytes))
	if err != nil {
		return "", err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", nil
	}
	return strings.TrimSpace(payload.Token), nil
}

func respondRateLimited(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, store RateLimiterStore, policy IntakeRateLimitPolicy, scope, ip, tokenHash string, count int64, limit int) {
	if logg != nil {
		fields := map[string]any{
			"scope":          scope,
			"attempts":       count,
			"limit":          limit,
			"window_seconds": int(policy.window.Seconds()),
		}
		if ip != "" {
			fields["ip"] = ip
		}
		if tokenHash != "" {
			fields["token_hash"] = tokenHash
		}
		logg.Warn(logg.WithFields(ctx, fields), "intake.rate_limit.blocked")
	}
	retry := policy.window
	if ttl, err := store.RetryAfter(ctx, scope); err == nil && ttl > 0 {
		retry = ttl
	}
	w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
	responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

func hashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
