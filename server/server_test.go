package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jacobpatterson1549/selene-mahjongg/game/generator"
	"github.com/jacobpatterson1549/selene-mahjongg/server/log/logtest"
)

func TestNewServer(t *testing.T) {
	testLog := logtest.DiscardLogger
	var tokenizer mockTokenizer
	var layoutDao mockLayoutDao
	var passwordHandler mockPasswordHandler
	var player mockPlayer
	seedFunc := func() int64 { return 7 }
	validParameters := Parameters{
		Logger:          testLog,
		Tokenizer:       tokenizer,
		LayoutDao:       layoutDao,
		PasswordHandler: passwordHandler,
		Player:          player,
		SeedFunc:        seedFunc,
	}
	validConfig := Config{
		Port:           8001,
		StopDur:        time.Second,
		Version:        "abc123",
		MaxLayoutBytes: 1 << 20,
	}
	newServerTests := []struct {
		Parameters
		Config
		wantOk bool
	}{
		{}, // no log
		{ // no tokenizer
			Parameters: Parameters{
				Logger: testLog,
			},
		},
		{ // no layout dao
			Parameters: Parameters{
				Logger:    testLog,
				Tokenizer: tokenizer,
			},
		},
		{ // no password handler
			Parameters: Parameters{
				Logger:    testLog,
				Tokenizer: tokenizer,
				LayoutDao: layoutDao,
			},
		},
		{ // no player
			Parameters: Parameters{
				Logger:          testLog,
				Tokenizer:       tokenizer,
				LayoutDao:       layoutDao,
				PasswordHandler: passwordHandler,
			},
		},
		{ // no seed func
			Parameters: Parameters{
				Logger:          testLog,
				Tokenizer:       tokenizer,
				LayoutDao:       layoutDao,
				PasswordHandler: passwordHandler,
				Player:          player,
			},
		},
		{ // bad deal config
			Parameters: validParameters,
			Config: Config{
				Port:           8001,
				StopDur:        time.Second,
				Version:        "abc123",
				MaxLayoutBytes: 1 << 20,
				DealConfig: generator.DealConfig{
					Retries: -1,
				},
			},
		},
		{ // no port
			Parameters: validParameters,
			Config: Config{
				StopDur:        time.Second,
				Version:        "abc123",
				MaxLayoutBytes: 1 << 20,
			},
		},
		{ // no stop duration
			Parameters: validParameters,
			Config: Config{
				Port:           8001,
				Version:        "abc123",
				MaxLayoutBytes: 1 << 20,
			},
		},
		{ // no max layout bytes
			Parameters: validParameters,
			Config: Config{
				Port:    8001,
				StopDur: time.Second,
				Version: "abc123",
			},
		},
		{ // no version
			Parameters: validParameters,
			Config: Config{
				Port:           8001,
				StopDur:        time.Second,
				MaxLayoutBytes: 1 << 20,
			},
		},
		{ // bad version
			Parameters: validParameters,
			Config: Config{
				Port:           8001,
				StopDur:        time.Second,
				Version:        "v1.0.0",
				MaxLayoutBytes: 1 << 20,
			},
		},
		{ // happy path
			Parameters: validParameters,
			Config:     validConfig,
			wantOk:     true,
		},
	}
	for i, test := range newServerTests {
		got, err := test.Config.NewServer(test.Parameters)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case got.httpServer == nil:
			t.Errorf("Test %v: http server not set", i)
		case got.httpServer.Addr != ":8001":
			t.Errorf("Test %v: wanted http server address :8001, got %v", i, got.httpServer.Addr)
		case got.log != test.Parameters.Logger:
			t.Errorf("Test %v: log not set", i)
		}
	}
}

func TestRunStop(t *testing.T) {
	p := Parameters{
		Logger:          logtest.DiscardLogger,
		Tokenizer:       mockTokenizer{},
		LayoutDao:       mockLayoutDao{},
		PasswordHandler: mockPasswordHandler(nil),
		Player:          mockPlayer(nil),
		SeedFunc:        func() int64 { return 1 },
	}
	cfg := Config{
		Port:           1, // replaced below
		StopDur:        time.Second,
		Version:        "test",
		MaxLayoutBytes: 1,
	}
	s, err := cfg.NewServer(p)
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}
	s.httpServer.Addr = "127.0.0.1:0"
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()
	errC := s.Run(ctx)
	time.Sleep(10 * time.Millisecond)
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("unwanted error stopping server: %v", err)
	}
	select {
	case err := <-errC:
		if err != nil {
			t.Errorf("unwanted server error: %v", err)
		}
	case <-time.After(time.Second):
		t.Error("server did not stop")
	}
}

func TestStopWaitsForSessions(t *testing.T) {
	s := Server{
		Config: Config{
			StopDur: 10 * time.Millisecond,
		},
	}
	s.httpServer = new(http.Server)
	s.wg.Add(1)
	err := s.Stop(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("wanted deadline exceeded error when sessions do not stop, got %v", err)
	}
	s.wg.Done()
}
