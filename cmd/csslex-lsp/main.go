// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"csslex/internal/lsp"
)

func main() {
	var (
		verbosity int
		logFile   string
		debug     bool
	)

	rootCmd := &cobra.Command{
		Use:          "csslex-lsp",
		Short:        "Language server for the csslex CSS dialect (LSP over stdio)",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(verbosity, logFile, debug)
		},
	}

	rootCmd.Flags().IntVar(&verbosity, "verbosity", 1, "Log verbosity, -4 is silent and 2 is debug")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable glsp protocol debug logs")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(verbosity int, logFile string, debug bool) error {
	// stdout carries the protocol, logs go to stderr or a file
	var path *string
	if logFile != "" {
		path = &logFile
	}
	commonlog.Configure(verbosity, path)

	log := commonlog.GetLogger("csslex.lsp")

	cssHandler := lsp.NewCSSHandler()

	handler := protocol.Handler{
		Initialize:             cssHandler.Initialize,
		Initialized:            cssHandler.Initialized,
		Shutdown:               cssHandler.Shutdown,
		SetTrace:               cssHandler.SetTrace,
		TextDocumentDidOpen:    cssHandler.TextDocumentDidOpen,
		TextDocumentDidClose:   cssHandler.TextDocumentDidClose,
		TextDocumentDidChange:  cssHandler.TextDocumentDidChange,
		TextDocumentCompletion: cssHandler.TextDocumentCompletion,
	}

	s := server.NewServer(&handler, lsp.Name, debug)

	log.Info("Starting csslex LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Errorf("Error starting csslex LSP server: %s", err)
		return err
	}
	return nil
}
