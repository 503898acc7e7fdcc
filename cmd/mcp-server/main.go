// Command mcp-server exposes the drill fixture catalog as MCP tools over
// stdio, so an assistant helping a learner can look up the canned responses.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/patrickwarner/gitdrills/internal/config"
	"github.com/patrickwarner/gitdrills/internal/fixtures"
	"github.com/patrickwarner/gitdrills/internal/observability"
)

type ListDrillsInput struct {
	Drill string `json:"drill,omitempty" jsonschema:"only list cases of this drill"`
}

type DrillCases struct {
	Drill string   `json:"drill"`
	Cases []string `json:"cases"`
}

type ListDrillsOutput struct {
	Drills []DrillCases `json:"drills"`
}

type GetFixtureInput struct {
	Drill string `json:"drill" jsonschema:"drill name, e.g. branching"`
	Case  string `json:"case" jsonschema:"case name, e.g. valid_login"`
}

type GetFixtureOutput struct {
	Drill  string         `json:"drill"`
	Case   string         `json:"case"`
	Status int            `json:"status"`
	Body   map[string]any `json:"body,omitempty"`
}

// DrillServer holds our dependencies
type DrillServer struct {
	catalog *fixtures.Catalog
	logger  *zap.Logger
}

// ListDrills implements the list_drills tool.
func (s *DrillServer) ListDrills(ctx context.Context, req *mcp.CallToolRequest, input ListDrillsInput) (*mcp.CallToolResult, ListDrillsOutput, error) {
	names := s.catalog.Drills()
	if input.Drill != "" {
		names = []string{input.Drill}
	}

	out := ListDrillsOutput{Drills: make([]DrillCases, 0, len(names))}
	for _, drill := range names {
		cases, err := s.catalog.Cases(drill)
		if err != nil {
			return nil, ListDrillsOutput{}, err
		}
		out.Drills = append(out.Drills, DrillCases{Drill: drill, Cases: cases})
	}
	s.logger.Debug("listed drills", zap.Int("count", len(out.Drills)))
	return nil, out, nil
}

// GetFixture implements the get_fixture tool.
func (s *DrillServer) GetFixture(ctx context.Context, req *mcp.CallToolRequest, input GetFixtureInput) (*mcp.CallToolResult, GetFixtureOutput, error) {
	resp, err := s.catalog.Lookup(input.Drill, input.Case)
	if err != nil {
		s.logger.Info("fixture lookup failed", zap.String("drill", input.Drill), zap.String("case", input.Case), zap.Error(err))
		return nil, GetFixtureOutput{}, err
	}
	return nil, GetFixtureOutput{
		Drill:  input.Drill,
		Case:   input.Case,
		Status: resp.Status,
		Body:   resp.Body,
	}, nil
}

// transportLog forwards MCP wire traffic to the logger at debug level,
// one entry per frame.
type transportLog struct {
	logger *zap.Logger
}

func (w transportLog) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			w.logger.Debug("mcp transport", zap.String("frame", line))
		}
	}
	return len(p), nil
}

func newMCPServer(ds *DrillServer) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "gitdrills",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_drills",
		Description: "List practice drills and the canned response cases each one defines",
	}, ds.ListDrills)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_fixture",
		Description: "Return the canned status code and body for one drill case",
	}, ds.GetFixture)

	return server
}

func main() {
	cfg := config.Load()

	logger, err := observability.InitLoggerWithService(cfg.ServiceName + "-mcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := fixtures.Load(cfg.FixturesFile)
	if err != nil {
		logger.Fatal("Failed to load fixtures", zap.Error(err))
	}

	server := newMCPServer(&DrillServer{catalog: catalog, logger: logger})

	loggingTransport := &mcp.LoggingTransport{
		Transport: &mcp.StdioTransport{},
		Writer:    transportLog{logger: logger.Named("transport")},
	}

	logger.Info("MCP Server running via stdio")

	if err := server.Run(context.Background(), loggingTransport); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
