package useragent

// Config holds Detector settings read from the environment.
type Config struct {
	// ExtensionsFile is an optional YAML file with extra categories.
	ExtensionsFile string `env:"UA_EXTENSIONS_FILE"`
	// RegexpCacheSize bounds the compiled pattern cache.
	RegexpCacheSize int `env:"UA_REGEXP_CACHE_SIZE" envDefault:"512"`
	// CrawlerFallback enables the secondary crawler parser.
	CrawlerFallback bool `env:"UA_CRAWLER_FALLBACK" envDefault:"true"`
}

// NewFromConfig creates a Detector from cfg. opts are applied after the
// settings derived from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Detector, error) {
	base := []Option{
		WithCacheSize(cfg.RegexpCacheSize),
		WithCrawlerFallback(cfg.CrawlerFallback),
	}
	if cfg.ExtensionsFile != "" {
		ext, err := LoadExtensions(cfg.ExtensionsFile)
		if err != nil {
			return nil, err
		}
		base = append(base, WithExtensions(ext))
	}
	return New(append(base, opts...)...), nil
}
