package web

import (
	"time"

	"github.com/daarukart/storefront/internal/catalog"
	"github.com/daarukart/storefront/internal/logger"
	"github.com/daarukart/storefront/internal/money"
	"github.com/daarukart/storefront/internal/order"
)

// LogPresenter is the demo shell's stand-in for a real UI: selection changes,
// toasts and field errors all land in the log. It satisfies both the
// selection notifier and the order pipeline's presenter.
type LogPresenter struct {
	l *logger.Logger
}

func NewLogPresenter(l *logger.Logger) *LogPresenter {
	return &LogPresenter{l: l}
}

func (p *LogPresenter) SelectionChanged(product *catalog.Product) {
	if product == nil {
		p.l.LogInfo("presenter: selection cleared")

		return
	}

	p.l.LogInfo("presenter: selection summary -> %s (%s)", product.Name, money.Format(product.Price))
}

func (p *LogPresenter) ShowNotification(kind order.Kind, message string, duration time.Duration) {
	p.l.LogInfo("presenter: [%s] %s (shown for %s)", kind, message, duration)
}

func (p *LogPresenter) RenderFieldErrors(fields map[string]string) {
	for field, msg := range fields {
		p.l.LogInfo("presenter: field error %s: %s", field, msg)
	}
}
