package rabbitmq_common

import "fmt"

// Config is the connection part shared by producers and consumers.
type Config struct {
	URL string
}

func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("rabbitmq URL is required")
	}
	return nil
}
