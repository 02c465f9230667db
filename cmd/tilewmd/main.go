// Command tilewmd is the window manager daemon: it owns the container
// tree, the X11 connection, and the single-threaded event loop that
// drains platform events and keybinding triggers into handlers.Dispatch
// and the reconciler. It also carries the "tree" subcommand, a
// read-only inspector for whatever daemon is already running.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/tilewm/internal/command"
	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/geometry"
	"github.com/1broseidon/tilewm/internal/handlers"
	"github.com/1broseidon/tilewm/internal/hotkeys"
	"github.com/1broseidon/tilewm/internal/ipc"
	"github.com/1broseidon/tilewm/internal/platform/x11adapter"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/runtimepath"
	"github.com/1broseidon/tilewm/internal/treeops"
	"github.com/1broseidon/tilewm/internal/treeview"
	"github.com/1broseidon/tilewm/internal/wmcore"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		runDaemon()
	case "tree":
		os.Exit(runTree())
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "tilewmd: unknown subcommand %q\n\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(2)
	}
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: tilewmd <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon   run the window manager")
	fmt.Fprintln(w, "  tree     inspect the live container tree of a running daemon")
}

// runTree launches the read-only tree inspector against whatever daemon
// is already listening on the runtime socket.
func runTree() int {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilewmd: resolve socket path: %v\n", err)
		return 1
	}
	if err := treeview.Run(socketPath); err != nil {
		fmt.Fprintf(os.Stderr, "tilewmd: tree: %v\n", err)
		return 1
	}
	return 0
}

func runDaemon() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	configPath, err := config.DefaultConfigPath()
	if err != nil {
		log.Fatalf("tilewmd: resolve config path: %v", err)
	}
	cfg, err := config.LoadFromPath(configPath)
	if err != nil {
		log.Fatalf("tilewmd: load config: %v", err)
	}

	conn, err := x11adapter.NewConnection()
	if err != nil {
		log.Fatalf("tilewmd: connect to X server: %v", err)
	}
	defer conn.Close()
	backend := x11adapter.New(conn)

	state := wmcore.New(wmtree.NewTree(), cfg, backend, logger)
	state.ConfigPath = configPath

	events := make(chan handlers.Event, 64)
	broadcaster := ipc.NewBroadcaster(logger)
	bootstrap(state, broadcaster)

	if err := backend.WatchRoot(events); err != nil {
		log.Fatalf("tilewmd: watch root window: %v", err)
	}

	hotkeyHandler := hotkeys.NewHandler(backend, events)
	if err := hotkeyHandler.RegisterAll(cfg); err != nil {
		log.Fatalf("tilewmd: register keybindings: %v", err)
	}

	requests := make(chan *ipcRequest, 16)
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		log.Fatalf("tilewmd: resolve socket path: %v", err)
	}
	server := ipc.NewServer(socketPath, &coreRunner{requests: requests}, broadcaster, logger)
	if err := server.Start(); err != nil {
		log.Fatalf("tilewmd: start ipc server: %v", err)
	}
	defer server.Stop()

	go conn.EventLoop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	logger.Info("tilewmd: started")
	for {
		select {
		case ev := <-events:
			pending := handlers.Dispatch(state, broadcaster, ev)
			reconcile.Run(state, pending, broadcaster)

		case req := <-requests:
			serveRequest(state, broadcaster, req)

		case sig := <-sigCh:
			switch sig {
			case syscall.SIGHUP:
				newCfg, err := config.LoadFromPath(configPath)
				if err != nil {
					logger.Warn("tilewmd: config reload failed", "error", err)
					continue
				}
				*state.Config = *newCfg
				broadcaster.Publish(ipc.Event{Kind: ipc.EventUserConfigChanged})
				logger.Info("tilewmd: config reloaded")
			default:
				logger.Info("tilewmd: shutting down", "signal", sig)
				return
			}
		}
	}
}

// bootstrap enumerates the initial monitor set and creates the static
// workspace inventory from cfg.Workspaces, activating the first
// workspace attached to each monitor (the rest stay hidden behind it in
// child focus order) so every monitor starts with a displayed workspace.
func bootstrap(state *wmcore.State, sink ipc.Sink) {
	pending := handlers.Dispatch(state, sink, handlers.Event{Kind: handlers.KindDisplaySettingsChanged})
	reconcile.Run(state, pending, sink)

	monitors := state.Tree.Root().Children
	if len(monitors) == 0 {
		state.Logger.Warn("tilewmd: no monitors reported at startup")
		return
	}

	pending = reconcile.NewPendingSync()
	nextMonitor := 0
	for _, wsCfg := range state.Config.Workspaces {
		monitorIdx := nextMonitor
		if wsCfg.BindToMonitor != nil && *wsCfg.BindToMonitor >= 0 && *wsCfg.BindToMonitor < len(monitors) {
			monitorIdx = *wsCfg.BindToMonitor
		} else {
			nextMonitor = (nextMonitor + 1) % len(monitors)
		}
		monitorID := monitors[monitorIdx]

		c := state.Tree.NewWorkspace()
		c.Workspace.Name = wsCfg.Name
		c.Workspace.DisplayName = wsCfg.DisplayName
		c.Workspace.KeepAlive = wsCfg.KeepAlive
		c.Workspace.BoundMonitorIndex = wsCfg.BindToMonitor
		c.Workspace.TilingDirection = geometry.TilingDirectionHorizontal
		c.Workspace.InnerGap = state.Config.Gaps.InnerGap
		c.Workspace.OuterGap = state.Config.Gaps.OuterGap

		if _, err := treeops.Attach(state.Tree, monitorID, c.ID, -1); err != nil {
			state.Logger.Warn("tilewmd: attach workspace failed", "workspace", wsCfg.Name, "error", err)
			continue
		}
		if _, ok := state.Tree.DisplayedWorkspace(monitorID); !ok {
			treeops.SetFocusedDescendant(state.Tree, c.ID, 0)
		}
	}
	reconcile.Run(state, pending, sink)
}

// ipcOp discriminates the two requests an IPC connection goroutine can
// ask the main loop to run on its behalf.
type ipcOp int

const (
	opRunCommand ipcOp = iota
	opGetTree
)

type ipcRequest struct {
	op       ipcOp
	commands []string
	subject  uint64
	resultCh chan ipcResult
}

type ipcResult struct {
	subject uint64
	tree    ipc.ContainerDto
	err     error
}

// coreRunner implements ipc.CommandRunner by posting work onto the main
// loop's request channel and blocking for the result, so IPC connection
// goroutines never touch the tree directly; the core's single-threaded
// event loop is the only writer.
type coreRunner struct {
	requests chan *ipcRequest
}

func (r *coreRunner) RunCommand(commands []string, subject uint64) (uint64, error) {
	resultCh := make(chan ipcResult, 1)
	r.requests <- &ipcRequest{op: opRunCommand, commands: commands, subject: subject, resultCh: resultCh}
	res := <-resultCh
	return res.subject, res.err
}

func (r *coreRunner) Tree() ipc.ContainerDto {
	resultCh := make(chan ipcResult, 1)
	r.requests <- &ipcRequest{op: opGetTree, resultCh: resultCh}
	return (<-resultCh).tree
}

func serveRequest(state *wmcore.State, sink ipc.Sink, req *ipcRequest) {
	switch req.op {
	case opRunCommand:
		subject, err := runCommandOnCore(state, sink, req.commands, req.subject)
		req.resultCh <- ipcResult{subject: subject, err: err}
	case opGetTree:
		req.resultCh <- ipcResult{tree: ipc.ToDTO(state.Tree, state.Tree.RootID())}
	}
}

func runCommandOnCore(state *wmcore.State, sink ipc.Sink, commands []string, subject uint64) (uint64, error) {
	cmds, err := command.ParseAll(commands)
	if err != nil {
		return 0, err
	}
	subjectID := wmtree.ContainerID(subject)
	if subjectID == 0 {
		subjectID = state.Tree.FocusedContainer()
	}
	pending := reconcile.NewPendingSync()
	next, err := command.RunMultiple(state, pending, sink, cmds, subjectID)
	if err != nil {
		return 0, err
	}
	reconcile.Run(state, pending, sink)
	return uint64(next), nil
}
