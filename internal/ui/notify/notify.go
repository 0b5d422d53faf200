// Package notify renders transient success/error banners. Call sites can
// override the action glyph, duration and panel styling; everything else
// falls back to per-flow defaults.
package notify

import (
	"time"

	"github.com/pterm/pterm"
)

// Flow selects which default set applies.
type Flow int

const (
	FlowSuccess Flow = iota
	FlowError
)

type Options struct {
	Action     string
	Duration   time.Duration
	PanelStyle *pterm.Style
}

type Option func(*Options)

func WithAction(action string) Option {
	return func(o *Options) { o.Action = action }
}

func WithDuration(d time.Duration) Option {
	return func(o *Options) { o.Duration = d }
}

func WithPanelStyle(style *pterm.Style) Option {
	return func(o *Options) { o.PanelStyle = style }
}

// Resolve applies opts over the flow's defaults.
func Resolve(flow Flow, opts ...Option) Options {
	resolved := defaults(flow)
	for _, opt := range opts {
		opt(&resolved)
	}
	return resolved
}

func defaults(flow Flow) Options {
	if flow == FlowError {
		return Options{
			Action:     "✕",
			Duration:   5 * time.Second,
			PanelStyle: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
		}
	}
	return Options{
		Action:     "✓",
		Duration:   3 * time.Second,
		PanelStyle: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	}
}

// Notifier shows non-blocking success/error banners.
type Notifier interface {
	Success(message string, opts ...Option)
	Error(message string, opts ...Option)
}

// Presenter renders banners through pterm. A terminal line cannot
// auto-dismiss, so the resolved duration is presentation metadata only.
type Presenter struct{}

func NewPresenter() *Presenter {
	return &Presenter{}
}

func (p *Presenter) Success(message string, opts ...Option) {
	p.render(Resolve(FlowSuccess, opts...), message)
}

func (p *Presenter) Error(message string, opts ...Option) {
	p.render(Resolve(FlowError, opts...), message)
}

func (p *Presenter) render(o Options, message string) {
	printer := pterm.PrefixPrinter{
		Prefix: pterm.Prefix{
			Text:  " " + o.Action + " ",
			Style: o.PanelStyle,
		},
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
	}
	printer.Println(message)
}
