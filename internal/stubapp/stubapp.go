// Package stubapp serves a minimal stand-in for the AuraOS web application:
// just enough markup for the landing/login verification flow to run against
// without the real product. Tests perturb Options to provoke each failure
// class.
package stubapp

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Moeabdelaziz007/auraos/internal/verify"
)

// Options controls the markup the stub serves.
type Options struct {
	LandingHeading string
	LoginHeading   string
	LoginButtons   int
}

// DefaultOptions matches the verification contract: the real headings and
// exactly one Login button.
func DefaultOptions() Options {
	return Options{
		LandingHeading: verify.LandingHeading,
		LoginHeading:   verify.LoginHeading,
		LoginButtons:   1,
	}
}

// Router builds the stub routes. Callers set the gin mode.
func Router(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingHTML(opts)))
	})

	r.GET("/login", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginHTML(opts)))
	})

	return r
}

func landingHTML(opts Options) string {
	var buttons strings.Builder
	for i := 0; i < opts.LoginButtons; i++ {
		buttons.WriteString(`<form action="/login" method="get"><button type="submit">Login</button></form>`)
		buttons.WriteString("\n")
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>AuraOS</title></head>
<body>
<header>
%s</header>
<section class="hero">
<h1>%s</h1>
<p>Build, deploy, and orchestrate intelligent agents.</p>
</section>
</body>
</html>`, buttons.String(), opts.LandingHeading)
}

func loginHTML(opts Options) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>AuraOS - Login</title></head>
<body>
<main>
<h1>%s</h1>
<form action="/auth" method="post">
<input id="email" type="email" placeholder="Email">
<input id="password" type="password" placeholder="Password">
<button type="submit">Sign In</button>
</form>
</main>
</body>
</html>`, opts.LoginHeading)
}
