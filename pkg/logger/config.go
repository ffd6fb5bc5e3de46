package logger

// Config holds logger settings read from the environment.
type Config struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME"`
}

// Options converts c into logger options. Environment defaults apply first;
// explicit level and format settings override them.
func (c Config) Options() []Option {
	opts := []Option{WithEnvironment(c.Env, c.Service)}
	if c.Level != "" {
		opts = append(opts, WithLevelName(c.Level))
	}
	if c.Format != "" {
		opts = append(opts, WithFormat(Format(c.Format)))
	}
	return opts
}
