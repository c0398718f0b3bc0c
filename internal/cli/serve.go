package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/remotetodo/internal/model"
	"github.com/idilsaglam/remotetodo/internal/ui"
)

var sampleItems = []model.Item{
	{ID: "1", Title: "Title 1", Body: "Buy milk"},
	{ID: "2", Title: "Title 2", Body: "Call the plumber", Completed: true},
	{ID: "3", Title: "Title 3", Body: "Write the weekly report"},
}

// fixtureOptions shape how the fixture endpoint answers.
type fixtureOptions struct {
	Items []model.Item
	Delay time.Duration
	// Fail makes every list request answer 500.
	Fail bool
}

func newFixtureRouter(opt fixtureOptions, log *logrus.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/todos", func(c *gin.Context) {
		if opt.Delay > 0 {
			select {
			case <-time.After(opt.Delay):
			case <-c.Request.Context().Done():
				return
			}
		}
		if opt.Fail {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "fixture failure"})
			return
		}
		items := opt.Items
		if items == nil {
			items = []model.Item{}
		}
		c.JSON(http.StatusOK, items)
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"component": "fixture",
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  time.Since(start).String(),
		}).Info("request")
	}
}

func loadFixture(path string) ([]model.Item, error) {
	if path == "" {
		return sampleItems, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return items, nil
}

func newServeCmd(app *App) *cobra.Command {
	var (
		addr  string
		file  string
		delay time.Duration
		fail  bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a fixture list endpoint at GET /todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadFixture(file)
			if err != nil {
				return err
			}
			router := newFixtureRouter(fixtureOptions{Items: items, Delay: delay, Fail: fail}, app.log)
			srv := &http.Server{Addr: addr, Handler: router}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()
			ui.OK(fmt.Sprintf("serving %d items at http://%s/todos", len(items), displayAddr(addr)))

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:3000", "listen address")
	cmd.Flags().StringVar(&file, "file", "", "JSON array of items to serve (default: built-in sample)")
	cmd.Flags().DurationVar(&delay, "delay", 0, "wait before answering, to watch the loading state")
	cmd.Flags().BoolVar(&fail, "fail", false, "answer every list request with 500")
	return cmd
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
