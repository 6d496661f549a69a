// Package notify is the in-process stand-in for the campus notification
// collaborator: it logs each event and counts outcomes. Swapping in a real
// delivery channel replaces this package, not the engine.
package notify

import (
	"context"
	"log/slog"

	"registrar/internal/metrics"
	"registrar/internal/pkg/ptr"
	"registrar/internal/usecase/commands"
)

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) commands.Notifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SubmissionSummary(ctx context.Context, event commands.SubmissionSummary) {
	metrics.RegistrationOutcomes.WithLabelValues("enrolled").Add(float64(event.Enrolled))
	metrics.RegistrationOutcomes.WithLabelValues("waitlisted").Add(float64(event.Waitlisted))
	metrics.RegistrationOutcomes.WithLabelValues("failed").Add(float64(event.Failed))

	n.logger.InfoContext(ctx, "registration submission processed",
		slog.String("student_id", event.StudentID.String()),
		slog.Int("enrolled", event.Enrolled),
		slog.Int("waitlisted", event.Waitlisted),
		slog.Int("failed", event.Failed),
	)
}

func (n *LogNotifier) WithdrawalConfirmed(ctx context.Context, event commands.WithdrawalConfirmed) {
	n.logger.InfoContext(ctx, "withdrawal confirmed",
		slog.String("student_id", event.StudentID.String()),
		slog.String("offering_id", event.OfferingID.String()),
	)
}

func (n *LogNotifier) WaitlistPromoted(ctx context.Context, event commands.WaitlistPromoted) {
	metrics.WaitlistPromotions.Inc()

	n.logger.InfoContext(ctx, "promoted from waitlist",
		slog.String("student_id", event.StudentID.String()),
		slog.String("offering_id", event.OfferingID.String()),
	)
}

func (n *LogNotifier) ExceptionReviewed(ctx context.Context, event commands.ExceptionReviewed) {
	n.logger.InfoContext(ctx, "exception request reviewed",
		slog.String("student_id", event.StudentID.String()),
		slog.String("offering_id", event.OfferingID.String()),
		slog.Bool("approved", event.Approved),
		slog.String("comment", ptr.Deref(event.Comment, "")),
	)
}
