package config

import (
	"testing"
	"time"

	"github.com/franela/goblin"
)

func Test_Config(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("Load", func() {
		g.It("reads a sqlite configuration without requiring server credentials", func() {
			t.Setenv("DB_DRIVER", "sqlite3")
			t.Setenv("DB_PATH", "/tmp/fyyur-test.db")
			t.Setenv("APP_PORT", "8081")
			t.Setenv("APP_DEBUG", "false")
			t.Setenv("ERROR_LOG_PATH", "")
			cfg := Load()
			g.Assert(cfg.Port).Equal("8081")
			g.Assert(cfg.DB.Driver).Equal(DriverSQLite)
			g.Assert(cfg.DB.Path).Equal("/tmp/fyyur-test.db")
			g.Assert(cfg.ErrorLogPath).Equal("error.log")
			g.Assert(cfg.ListingQueue).Equal("fyyur.listings")
		})

		g.It("defaults the mysql port and keeps an empty password", func() {
			t.Setenv("DB_DRIVER", "mysql")
			t.Setenv("DB_USER", "fyyur")
			t.Setenv("DB_HOST", "db")
			t.Setenv("DB_NAME", "fyyur")
			t.Setenv("DB_PORT", "")
			t.Setenv("DB_PASS", "")
			cfg := Load()
			g.Assert(cfg.DB.Port).Equal("3306")
			g.Assert(cfg.DB.Pass).Equal("")
		})

		g.It("disables the error log file in debug mode", func() {
			t.Setenv("DB_DRIVER", "sqlite3")
			t.Setenv("APP_DEBUG", "true")
			t.Setenv("ERROR_LOG_PATH", "")
			cfg := Load()
			g.Assert(cfg.Debug).Equal(true)
			g.Assert(cfg.ErrorLogPath).Equal("")
		})

		g.It("prefers RABBITMQ_URL over AMQP_URL", func() {
			t.Setenv("DB_DRIVER", "sqlite3")
			t.Setenv("AMQP_URL", "amqp://b")
			t.Setenv("RABBITMQ_URL", "amqp://a")
			g.Assert(Load().RabbitMQURL).Equal("amqp://a")
		})

		g.It("reads the session secret", func() {
			t.Setenv("DB_DRIVER", "sqlite3")
			t.Setenv("SESSION_SECRET", "s3cret")
			g.Assert(Load().SessionSecret).Equal("s3cret")
		})
	})

	g.Describe("LoadRateLimitConfig", func() {
		g.It("limits form submissions only by default", func() {
			cfg := LoadRateLimitConfig()
			g.Assert(cfg.Methods["POST"]).Equal(true)
			g.Assert(cfg.Methods["DELETE"]).Equal(true)
			g.Assert(cfg.Methods["GET"]).Equal(false)
		})

		g.It("exempts the search forms by default", func() {
			cfg := LoadRateLimitConfig()
			g.Assert(cfg.Exempt["/venues/search"]).Equal(true)
			g.Assert(cfg.Exempt["/artists/search"]).Equal(true)
			g.Assert(cfg.Exempt["/venues/create"]).Equal(false)
		})

		g.It("reads exempt routes from the environment", func() {
			t.Setenv("RATE_LIMIT_EXEMPT", " /shows/create , ")
			cfg := LoadRateLimitConfig()
			g.Assert(len(cfg.Exempt)).Equal(1)
			g.Assert(cfg.Exempt["/shows/create"]).Equal(true)
		})

		g.It("raises the TTL to at least five refill intervals", func() {
			t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
			t.Setenv("RATE_LIMIT_TTL", "1s")
			g.Assert(LoadRateLimitConfig().TTL).Equal(5 * time.Minute)
		})
	})

	g.Describe("env helpers", func() {
		g.It("falls back to defaults on unparsable values", func() {
			t.Setenv("X_FYYUR_INT", "abc")
			t.Setenv("X_FYYUR_BOOL", "maybe")
			t.Setenv("X_FYYUR_DUR", "soon")
			g.Assert(envInt("X_FYYUR_INT", 7)).Equal(7)
			g.Assert(envBool("X_FYYUR_BOOL", true)).Equal(true)
			g.Assert(envDur("X_FYYUR_DUR", time.Second)).Equal(time.Second)
		})
	})
}
