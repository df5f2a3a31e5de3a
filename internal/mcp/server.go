// Package mcp exposes the resolution resolver over the Model Context
// Protocol, so agents and automation can read the same frozen values a
// game would start with.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/greyfell/monres"
	"github.com/greyfell/monres/internal/config"
)

const (
	ServerName    = "monres"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for monitor resolution queries.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	probe     monres.Probe
	log       logrus.FieldLogger
}

// NewServer creates an MCP server bound to the given configuration.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		probe:  monres.DetectProbe(),
		log:    logrus.StandardLogger(),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_resolution",
		Description: "Resolve the primary monitor's resolution and assemble the startup window config. Honors the FORCE_RESOLUTION override and falls back to the configured default when no probe succeeds; the status field reports resolved, degraded or overridden.",
	}, s.handleGetResolution)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "probe_monitor",
		Description: "Run the raw platform probe once and return the primary monitor's pixel size. Fails with the probe error instead of applying fallback or override policy.",
	}, s.handleProbeMonitor)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "assemble_config",
		Description: "Derive the scale factor and scaled layout sizes for a given resolution against the baseline, without touching the platform. Pure computation.",
	}, s.handleAssembleConfig)
}

func (s *Server) handleGetResolution(_ context.Context, _ *mcpsdk.CallToolRequest, args GetResolutionInput) (*mcpsdk.CallToolResult, GetResolutionOutput, error) {
	opts := append(s.config.ResolverOptions(),
		monres.WithProbe(s.probe),
		monres.WithLogger(s.log),
	)
	if args.Fullscreen != nil {
		opts = append(opts, monres.WithFullscreen(*args.Fullscreen))
	}

	result := monres.NewResolver(opts...).Resolve(s.config.ScalingBaseline())

	out := GetResolutionOutput{
		Width:       result.Config.Width,
		Height:      result.Config.Height,
		Status:      string(result.Status),
		ScaleFactor: result.ScaleFactor,
		TileSize:    result.Config.TileSize,
		Margin:      result.Config.Margin,
		Title:       result.Config.Title,
		Fullscreen:  result.Config.Fullscreen,
		Monitor:     result.Monitor.Name,
	}
	return nil, out, nil
}

func (s *Server) handleProbeMonitor(_ context.Context, _ *mcpsdk.CallToolRequest, _ ProbeMonitorInput) (*mcpsdk.CallToolResult, ProbeMonitorOutput, error) {
	res, mon, err := s.probe.Probe()
	if err != nil {
		return nil, ProbeMonitorOutput{}, err
	}

	out := ProbeMonitorOutput{
		Probe:   s.probe.Name(),
		Width:   res.Width,
		Height:  res.Height,
		Monitor: mon.Name,
		Primary: mon.Primary,
	}
	return nil, out, nil
}

func (s *Server) handleAssembleConfig(_ context.Context, _ *mcpsdk.CallToolRequest, args AssembleConfigInput) (*mcpsdk.CallToolResult, AssembleConfigOutput, error) {
	if args.Width <= 0 || args.Height <= 0 {
		return nil, AssembleConfigOutput{}, fmt.Errorf("width and height must be positive, got %dx%d", args.Width, args.Height)
	}

	baseline := s.config.ScalingBaseline()
	if args.ReferenceWidth > 0 {
		baseline.ReferenceWidth = args.ReferenceWidth
	}
	if args.ReferenceHeight > 0 {
		baseline.ReferenceHeight = args.ReferenceHeight
	}
	if args.TileSize > 0 {
		baseline.TileSize = args.TileSize
	}
	if args.Margin > 0 {
		baseline.Margin = args.Margin
	}
	if baseline.ReferenceWidth <= 0 || baseline.ReferenceHeight <= 0 {
		return nil, AssembleConfigOutput{}, fmt.Errorf("baseline reference must be positive, got %dx%d",
			baseline.ReferenceWidth, baseline.ReferenceHeight)
	}

	cfg, scale := monres.Assemble(monres.Resolution{Width: args.Width, Height: args.Height}, baseline)

	out := AssembleConfigOutput{
		ScaleFactor: scale,
		TileSize:    cfg.TileSize,
		Margin:      cfg.Margin,
	}
	return nil, out, nil
}
