package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/metrics"
	"github.com/allisson/places/internal/result"
	"github.com/allisson/places/internal/user/domain"
)

const metricsModule = "user"

func operationStatus(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// loginWithMetrics decorates LoginExecutor with metrics instrumentation.
type loginWithMetrics struct {
	next    LoginExecutor
	metrics metrics.BusinessMetrics
}

// NewLoginWithMetrics wraps a LoginExecutor with metrics recording.
func NewLoginWithMetrics(next LoginExecutor, m metrics.BusinessMetrics) LoginExecutor {
	return &loginWithMetrics{next: next, metrics: m}
}

func (l *loginWithMetrics) Execute(ctx context.Context, input LoginInput) result.Result[*domain.Session] {
	start := time.Now()
	res := l.next.Execute(ctx, input)

	status := operationStatus(res.Success())
	l.metrics.RecordOperation(ctx, metricsModule, "login", status)
	l.metrics.RecordDuration(ctx, metricsModule, "login", time.Since(start), status)

	return res
}

// registerWithMetrics decorates RegisterExecutor with metrics instrumentation.
type registerWithMetrics struct {
	next    RegisterExecutor
	metrics metrics.BusinessMetrics
}

// NewRegisterWithMetrics wraps a RegisterExecutor with metrics recording.
func NewRegisterWithMetrics(next RegisterExecutor, m metrics.BusinessMetrics) RegisterExecutor {
	return &registerWithMetrics{next: next, metrics: m}
}

func (r *registerWithMetrics) Execute(ctx context.Context, input RegisterInput) result.Result[*domain.Session] {
	start := time.Now()
	res := r.next.Execute(ctx, input)

	status := operationStatus(res.Success())
	r.metrics.RecordOperation(ctx, metricsModule, "register", status)
	r.metrics.RecordDuration(ctx, metricsModule, "register", time.Since(start), status)

	return res
}

// logoutWithMetrics decorates LogoutExecutor with metrics instrumentation.
type logoutWithMetrics struct {
	next    LogoutExecutor
	metrics metrics.BusinessMetrics
}

// NewLogoutWithMetrics wraps a LogoutExecutor with metrics recording.
func NewLogoutWithMetrics(next LogoutExecutor, m metrics.BusinessMetrics) LogoutExecutor {
	return &logoutWithMetrics{next: next, metrics: m}
}

func (l *logoutWithMetrics) Execute(ctx context.Context) result.Result[bool] {
	start := time.Now()
	res := l.next.Execute(ctx)

	status := operationStatus(res.Success())
	l.metrics.RecordOperation(ctx, metricsModule, "logout", status)
	l.metrics.RecordDuration(ctx, metricsModule, "logout", time.Since(start), status)

	return res
}

// forgotPasswordWithMetrics decorates ForgotPasswordExecutor with metrics
// instrumentation.
type forgotPasswordWithMetrics struct {
	next    ForgotPasswordExecutor
	metrics metrics.BusinessMetrics
}

// NewForgotPasswordWithMetrics wraps a ForgotPasswordExecutor with metrics recording.
func NewForgotPasswordWithMetrics(next ForgotPasswordExecutor, m metrics.BusinessMetrics) ForgotPasswordExecutor {
	return &forgotPasswordWithMetrics{next: next, metrics: m}
}

func (f *forgotPasswordWithMetrics) Execute(
	ctx context.Context,
	input ForgotPasswordInput,
) result.Result[bool] {
	start := time.Now()
	res := f.next.Execute(ctx, input)

	status := operationStatus(res.Success())
	f.metrics.RecordOperation(ctx, metricsModule, "forgot_password", status)
	f.metrics.RecordDuration(ctx, metricsModule, "forgot_password", time.Since(start), status)

	return res
}

// oauthLoginWithMetrics decorates OAuthLoginExecutor with metrics instrumentation.
type oauthLoginWithMetrics struct {
	next    OAuthLoginExecutor
	metrics metrics.BusinessMetrics
}

// NewOAuthLoginWithMetrics wraps an OAuthLoginExecutor with metrics recording.
func NewOAuthLoginWithMetrics(next OAuthLoginExecutor, m metrics.BusinessMetrics) OAuthLoginExecutor {
	return &oauthLoginWithMetrics{next: next, metrics: m}
}

func (o *oauthLoginWithMetrics) Execute(
	ctx context.Context,
	provider domain.OAuthProvider,
) result.Result[*domain.Session] {
	start := time.Now()
	res := o.next.Execute(ctx, provider)

	status := operationStatus(res.Success())
	o.metrics.RecordOperation(ctx, metricsModule, "oauth_login", status)
	o.metrics.RecordDuration(ctx, metricsModule, "oauth_login", time.Since(start), status)

	return res
}

// getProfileWithMetrics decorates GetProfileExecutor with metrics instrumentation.
type getProfileWithMetrics struct {
	next    GetProfileExecutor
	metrics metrics.BusinessMetrics
}

// NewGetProfileWithMetrics wraps a GetProfileExecutor with metrics recording.
func NewGetProfileWithMetrics(next GetProfileExecutor, m metrics.BusinessMetrics) GetProfileExecutor {
	return &getProfileWithMetrics{next: next, metrics: m}
}

func (g *getProfileWithMetrics) Execute(ctx context.Context, userID uuid.UUID) result.Result[*domain.User] {
	start := time.Now()
	res := g.next.Execute(ctx, userID)

	status := operationStatus(res.Success())
	g.metrics.RecordOperation(ctx, metricsModule, "get_profile", status)
	g.metrics.RecordDuration(ctx, metricsModule, "get_profile", time.Since(start), status)

	return res
}

// updateProfileWithMetrics decorates UpdateProfileExecutor with metrics
// instrumentation.
type updateProfileWithMetrics struct {
	next    UpdateProfileExecutor
	metrics metrics.BusinessMetrics
}

// NewUpdateProfileWithMetrics wraps an UpdateProfileExecutor with metrics recording.
func NewUpdateProfileWithMetrics(next UpdateProfileExecutor, m metrics.BusinessMetrics) UpdateProfileExecutor {
	return &updateProfileWithMetrics{next: next, metrics: m}
}

func (u *updateProfileWithMetrics) Execute(
	ctx context.Context,
	input UpdateProfileInput,
) result.Result[*domain.User] {
	start := time.Now()
	res := u.next.Execute(ctx, input)

	status := operationStatus(res.Success())
	u.metrics.RecordOperation(ctx, metricsModule, "update_profile", status)
	u.metrics.RecordDuration(ctx, metricsModule, "update_profile", time.Since(start), status)

	return res
}
