package providers

import (
	"fmt"
	"time"

	"github.com/gookit/validate"
	"ohd/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (c *CnfValidator) Validate() error {
	v := validate.Struct(c.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %w", v.Errors)
	}

	if tz := c.conf.Schedule.Timezone; tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("invalid config: schedule.timezone: %w", err)
		}
	}
	if c.conf.Cache.Enabled && c.conf.Cache.TTL < 0 {
		return fmt.Errorf("invalid config: cache.ttl must not be negative")
	}
	return nil
}
