package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/nuellacreatives/ledger-api/pkg/apiErrors"
	"github.com/nuellacreatives/ledger-api/pkg/log"
)

const (
	limiterExpiration      = 10 * time.Minute
	limiterCleanupInterval = 20 * time.Minute
)

// RateLimiter mantém um token bucket por cliente. Clientes inativos expiram do cache.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *cache.Cache
	trusted  []*net.IPNet
}

// NewRateLimiter cria o limitador. X-Forwarded-For só é lido quando a conexão
// vem de um dos trustedProxies (IP ou CIDR).
func NewRateLimiter(rps float64, burst int, trustedProxies ...string) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: cache.New(limiterExpiration, limiterCleanupInterval),
		trusted:  parseTrustedProxies(trustedProxies),
	}
}

func parseTrustedProxies(values []string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		if !strings.Contains(value, "/") {
			ip := net.ParseIP(value)
			if ip == nil {
				log.L.WithField("proxy", value).Warn("Proxy confiável inválido ignorado")
				continue
			}
			bits := 8 * net.IPv6len
			if ip.To4() != nil {
				ip = ip.To4()
				bits = 8 * net.IPv4len
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}

		_, ipNet, err := net.ParseCIDR(value)
		if err != nil {
			log.L.WithField("proxy", value).Warn("Proxy confiável inválido ignorado")
			continue
		}
		nets = append(nets, ipNet)
	}
	return nets
}

// Allow consome um token do cliente
func (rl *RateLimiter) Allow(client string) bool {
	if l, found := rl.limiters.Get(client); found {
		rl.limiters.SetDefault(client, l)
		return l.(*rate.Limiter).Allow()
	}

	l := rate.NewLimiter(rl.limit, rl.burst)
	if err := rl.limiters.Add(client, l, cache.DefaultExpiration); err != nil {
		// Outra requisição do mesmo cliente criou o limitador antes
		if existing, found := rl.limiters.Get(client); found {
			return existing.(*rate.Limiter).Allow()
		}
	}
	return l.Allow()
}

// Middleware responde 429 quando o cliente excede o limite
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.Allow(rl.clientIP(r)) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":        r.URL.Path,
					"remote_addr": r.RemoteAddr,
				}).Warn("Limite de requisições excedido")
				w.Header().Set("Retry-After", "1")
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Muitas requisições, tente novamente em instantes", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Limit envolve um único handler, para limites específicos de rota
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return rl.Middleware()(next)
}

// clientIP usa o endereço da conexão. Atrás de um proxy confiável, percorre o
// X-Forwarded-For da direita para a esquerda e devolve o primeiro endereço que
// não é de um proxy confiável.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if !rl.isTrusted(host) {
		return host
	}

	forwarded := r.Header.Values("X-Forwarded-For")
	hops := strings.Split(strings.Join(forwarded, ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if net.ParseIP(hop) == nil {
			return host
		}
		if !rl.isTrusted(hop) {
			return hop
		}
	}

	return host
}

func (rl *RateLimiter) isTrusted(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, ipNet := range rl.trusted {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}
