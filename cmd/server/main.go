// Package main starts the server after configuring it from supplied or standard arguments
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jacobpatterson1549/selene-mahjongg/db/bcrypt"
	"github.com/jacobpatterson1549/selene-mahjongg/server"
	"github.com/jacobpatterson1549/selene-mahjongg/server/log"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // register "postgres" database driver from package init() function
)

// main configures and runs the server.
func main() {
	ctx := context.Background()
	log := log.New(os.Stdout, "")
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env file: %v", err)
	}
	m, err := newMainFlags(os.Args, os.LookupEnv)
	if err != nil {
		os.Exit(2)
	}
	if m.hashPassword {
		if err := hashPassword(os.Stdin, os.Stdout); err != nil {
			fatalf(log, "hashing password: %v", err)
		}
		return
	}
	dao, err := m.createLayoutDao(ctx, log)
	if err != nil {
		fatalf(log, "creating layout dao: %v", err)
	}
	server, err := m.createServer(log, dao)
	if err != nil {
		fatalf(log, "creating server: %v", err)
	}
	if err := runServer(ctx, server, log); err != nil {
		fatalf(log, "running server: %v", err)
	}
	log.Printf("server run stopped successfully")
}

// runServer runs the server until it is interrupted or terminated.
// Play sessions are stopped before the server is.
func runServer(ctx context.Context, server *server.Server, log log.Logger) error {
	ctx, cancelFunc := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancelFunc()
	errC := server.Run(ctx)
	select { // BLOCKING
	case err := <-errC:
		if err != nil {
			log.Printf("server stopped unexpectedly: %v", err)
		}
	case <-ctx.Done():
		log.Printf("handled stop signal")
	}
	cancelFunc()
	if err := server.Stop(context.Background()); err != nil {
		return fmt.Errorf("stopping server: %w", err)
	}
	return nil
}

// hashPassword reads the first line of r and writes its bcrypt hash to w.
func hashPassword(r io.Reader, w io.Writer) error {
	ph, err := bcrypt.NewPasswordHandler(0)
	if err != nil {
		return err
	}
	password, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")
	if len(password) == 0 {
		return fmt.Errorf("password required")
	}
	hash, err := ph.Hash(password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(hash))
	return err
}

// fatalf logs the message and exits.
func fatalf(log log.Logger, format string, v ...interface{}) {
	log.Printf(format, v...)
	os.Exit(1)
}
