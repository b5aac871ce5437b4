package main

import (
	"context"
	crypto_rand "crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"net/url"
	"os"
	"time"

	"github.com/jacobpatterson1549/selene-mahjongg/db"
	"github.com/jacobpatterson1549/selene-mahjongg/db/bcrypt"
	"github.com/jacobpatterson1549/selene-mahjongg/db/catalog"
	"github.com/jacobpatterson1549/selene-mahjongg/db/firestore"
	"github.com/jacobpatterson1549/selene-mahjongg/db/mongo"
	"github.com/jacobpatterson1549/selene-mahjongg/db/sql"
	"github.com/jacobpatterson1549/selene-mahjongg/db/sql/postgres"
	"github.com/jacobpatterson1549/selene-mahjongg/game/generator"
	"github.com/jacobpatterson1549/selene-mahjongg/game/layout"
	"github.com/jacobpatterson1549/selene-mahjongg/server"
	"github.com/jacobpatterson1549/selene-mahjongg/server/auth"
	"github.com/jacobpatterson1549/selene-mahjongg/server/log"
	"github.com/jacobpatterson1549/selene-mahjongg/server/play"
)

// queryPeriod is the amount of time any database action can take.
const queryPeriod = 5 * time.Second

// createServer creates the server from the flags.
func (m mainFlags) createServer(log log.Logger, dao server.LayoutDao) (*server.Server, error) {
	v, err := cleanVersion(embeddedVersion)
	if err != nil {
		return nil, fmt.Errorf("reading embedded version: %w", err)
	}
	timeFunc := func() int64 {
		return time.Now().UTC().Unix()
	}
	tokenizer, err := m.tokenizer(timeFunc)
	if err != nil {
		return nil, err
	}
	ph, err := bcrypt.NewPasswordHandler(0)
	if err != nil {
		return nil, fmt.Errorf("creating password handler: %w", err)
	}
	playCfg := m.playConfig(log)
	player, err := playCfg.NewHandler(playCfg.NewGorillaUpgrader())
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}
	p := server.Parameters{
		Logger:            log,
		Tokenizer:         tokenizer,
		LayoutDao:         dao,
		PasswordHandler:   ph,
		Player:            player,
		AdminPasswordHash: []byte(m.adminPasswordHash),
		SeedFunc:          rand.Int63,
	}
	cfg := m.serverConfig(v)
	return cfg.NewServer(p)
}

// serverConfig creates the server configuration.
func (m mainFlags) serverConfig(version string) server.Config {
	cfg := server.Config{
		Port:    m.port,
		StopDur: 5 * time.Second,
		Version: version,
		DealConfig: generator.DealConfig{
			MaxSteps: m.maxSteps,
			Retries:  m.dealRetries,
		},
		MaxLayoutBytes: 1 << 20, // 1MB
	}
	return cfg
}

// tokenizer creates a tokenizer with a random key.
// Tokens for deals do not survive server restarts.
func (m mainFlags) tokenizer(timeFunc func() int64) (*auth.JwtTokenizer, error) {
	key, err := auth.GenerateKey(crypto_rand.Reader)
	if err != nil {
		return nil, err
	}
	cfg := auth.TokenizerConfig{
		TimeFunc: timeFunc,
		ValidSec: int64(m.tokenValidDur.Seconds()),
	}
	return cfg.NewTokenizer(key)
}

// playConfig creates the configuration for play sessions on websockets.
func (m mainFlags) playConfig(log log.Logger) play.Config {
	socketCfg := play.SocketConfig{
		Debug:          m.debugMessages,
		Log:            log,
		ReadWait:       60 * time.Second,
		WriteWait:      10 * time.Second,
		PingPeriod:     54 * time.Second, // readWait * 0.9
		IdlePeriod:     15 * time.Minute,
		HTTPPingPeriod: 10 * time.Minute,
	}
	cfg := play.Config{
		SocketConfig: socketCfg,
	}
	return cfg
}

// createLayoutDao creates the layout dao on the backend for the data source.
// The builtin layouts and the layouts in the layouts directory cannot be changed.
func (m mainFlags) createLayoutDao(ctx context.Context, log log.Logger) (*catalog.Dao, error) {
	backend, err := m.layoutBackend(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("creating layout backend: %w", err)
	}
	builtin, err := layout.Builtin()
	if err != nil {
		return nil, err
	}
	if len(m.layoutsDir) != 0 {
		dirLayouts, err := loadLayoutsDir(os.DirFS(m.layoutsDir), log)
		if err != nil {
			return nil, err
		}
		builtin = append(builtin, dirLayouts...)
	}
	builtin = uniqueLayouts(builtin, log)
	return catalog.NewDao(backend, builtin...)
}

// layoutBackend creates the backend for the scheme of the data source url.
// Layouts are stored in memory if there is no data source.
func (m mainFlags) layoutBackend(ctx context.Context, log log.Logger) (catalog.Backend, error) {
	if len(m.databaseURL) == 0 {
		log.Printf("no data source specified, layouts are stored in memory")
		return catalog.NewMemoryBackend(), nil
	}
	u, err := url.Parse(m.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing data source: %w", err)
	}
	cfg := db.Config{
		QueryPeriod: queryPeriod,
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		return postgresBackend(ctx, m.databaseURL)
	case "mongodb", "mongodb+srv":
		lb, err := mongo.NewLayoutBackend(ctx, cfg, m.databaseURL)
		if err != nil {
			return nil, err
		}
		if err := lb.Setup(ctx); err != nil {
			return nil, fmt.Errorf("setting up mongo layout backend: %w", err)
		}
		return lb, nil
	case "firestore":
		if len(u.Host) == 0 {
			return nil, fmt.Errorf("firestore data source requires a project id: firestore://PROJECT_ID")
		}
		return firestore.NewLayoutBackend(ctx, cfg, u.Host)
	}
	return nil, fmt.Errorf("unknown data source scheme: %q", u.Scheme)
}

// postgresBackend opens and sets up the sql database.
func postgresBackend(ctx context.Context, databaseURL string) (*postgres.LayoutBackend, error) {
	cfg := sql.DatabaseConfig{
		DriverName:  "postgres",
		DatabaseURL: databaseURL,
		QueryPeriod: queryPeriod,
	}
	sqlDB, err := cfg.NewDatabase()
	if err != nil {
		return nil, err
	}
	files, err := sqlFiles(embeddedSQLFS, sqlFileNames)
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Setup(ctx, files); err != nil {
		return nil, fmt.Errorf("setting up sql database: %w", err)
	}
	lb := postgres.LayoutBackend{
		Database: sqlDB,
	}
	return &lb, nil
}

// loadLayoutsDir loads the layouts in the files at the top of the directory.
// Files that are not layouts are skipped.
func loadLayoutsDir(fsys fs.FS, log log.Logger) ([]layout.Layout, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading layouts directory: %w", err)
	}
	var layouts []layout.Layout
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fileLayouts, err := layout.Load(fsys, e.Name())
		switch {
		case errors.Is(err, layout.ErrUnknownFormat):
			log.Printf("skipping %v: %v", e.Name(), err)
			continue
		case err != nil:
			return nil, err
		}
		layouts = append(layouts, fileLayouts...)
	}
	return layouts, nil
}

// uniqueLayouts removes layouts with names of earlier layouts.
func uniqueLayouts(layouts []layout.Layout, log log.Logger) []layout.Layout {
	names := make(map[string]struct{}, len(layouts))
	unique := layouts[:0]
	for _, l := range layouts {
		if _, ok := names[l.Name]; ok {
			log.Printf("skipping duplicate layout %q", l.Name)
			continue
		}
		names[l.Name] = struct{}{}
		unique = append(unique, l)
	}
	return unique
}
