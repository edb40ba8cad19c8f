package main

import (
	falehttp "github.com/fwojciec/fale/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := falehttp.NewServer()
	server.Addr = c.Addr
	server.Service = deps.Service
	server.Logger = deps.Logger
	if c.Rate > 0 {
		server.Limiter = falehttp.NewClientLimiter(c.Rate, c.Burst)
	}

	if err := server.Open(); err != nil {
		return err
	}
	deps.Logger.Info("server listening", "url", server.URL())

	<-deps.Ctx.Done()

	deps.Logger.Info("server shutting down")
	return server.Close()
}
