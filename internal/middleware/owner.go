package middleware

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=owner_mocks_test.go -package=middleware_test

type ownerChecker interface {
	IsOwner(ctx context.Context) (bool, error)
}

// OwnerOnly lets through only requests made while the node wallet owns the blog.
func OwnerOnly(checker ownerChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.ownerOnly")
			defer span.End()

			if r.Method == http.MethodOptions {
				writePreflight(w)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			isOwner, err := checker.IsOwner(ctx)
			if err != nil {
				log.Errorf("[owner check failed] => %s: %s", r.URL.Path, err)
				http.Error(w, "failed to resolve blog owner", http.StatusBadGateway)
				span.SetStatus(codes.Error, "owner-check-err")
				span.RecordError(err)
				return
			}
			if !isOwner {
				log.Tracef("[not owner] [owner middleware] forbidden => %s", r.URL.Path)
				http.Error(w, "only the blog owner can do this", http.StatusForbidden)
				span.SetStatus(codes.Error, "not-owner")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
