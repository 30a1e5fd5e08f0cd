package mdpage

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	styles           Styles
	osc8             bool
	stripFrontMatter bool
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{styles: DefaultStyles()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithStyles replaces the default styles.
func WithStyles(styles Styles) RenderOption {
	return func(cfg *renderConfig) {
		cfg.styles = styles
	}
}

// WithOSC8 enables or disables OSC 8 hyperlinks on link and image URLs.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithStripFrontMatter drops a leading front-matter block before rendering.
func WithStripFrontMatter(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.stripFrontMatter = enabled
	}
}
