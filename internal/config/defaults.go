package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultAllowedOrigin  = "http://localhost:3000"
	defaultMaxPageSize    = 100

	defaultTokenIssuer   = "go-contacts"
	defaultTokenDuration = 3600 * time.Second
	defaultVersion       = "dev"

	defaultCloudinaryBaseURL = "https://api.cloudinary.com"
)

// defaultConfig is merged last, so it only fills fields no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			Version:       defaultVersion,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AllowedOrigins: []string{defaultAllowedOrigin},
			MaxPageSize:    defaultMaxPageSize,
		},
		Adapter: Adapter{
			ImageHostProvider: ImageHostCloudinary,
			RequestTimeout:    defaultRequestTimeout,
			Cloudinary: Cloudinary{
				BaseURL: defaultCloudinaryBaseURL,
			},
		},
	}
}
