package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/vitakit/sysmodule"
	"github.com/vitakit/sysmodule/catalog"
	"github.com/vitakit/sysmodule/config"
	"github.com/vitakit/sysmodule/kernel"
	"github.com/vitakit/sysmodule/policy"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to config file (default: XDG lookup)")
		modeStr     = flag.String("mode", "", "Override modules mode (automatic, manual, auto+manual)")
		moduleName  = flag.String("module", "", "Resolve policy for one module and exit")
		loadNames   = flag.String("load", "", "Simulate loading modules (comma-separated names)")
		list        = flag.Bool("list", false, "List the policy decision for every module and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if !*list && *moduleName == "" && *loadNames == "" && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: llectl -list")
		fmt.Fprintln(os.Stderr, "       llectl -module <name> [-mode automatic|manual|auto+manual]")
		fmt.Fprintln(os.Stderr, "       llectl -load <name,name,...>")
		fmt.Fprintln(os.Stderr, "       llectl -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		kernel.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*configPath, *modeStr, *moduleName, *loadNames, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, modeStr, moduleName, loadNames string, list bool) error {
	ctx := context.Background()

	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: configPath})
	if err != nil {
		return err
	}

	if modeStr != "" {
		mode, err := sysmodule.ParseMode(modeStr)
		if err != nil {
			return err
		}
		cfg.ModulesMode = mode
	}

	resolver := policy.NewResolver(nil)

	if moduleName != "" {
		id, ok := catalog.ByName(moduleName)
		if !ok {
			return fmt.Errorf("unknown module %q", moduleName)
		}
		printDecision(resolver.Resolve(id, cfg), cfg.CurrentMode())
		return nil
	}

	if loadNames != "" {
		return simulateLoads(ctx, cfg, strings.Split(loadNames, ","))
	}

	if list {
		fmt.Printf("Modules mode: %s\n\n", cfg.CurrentMode())
		fmt.Printf("%-20s %-6s %-4s %s\n", "MODULE", "ID", "EXEC", "RULE")
		for _, d := range resolver.ResolveAll(cfg) {
			exec := "HLE"
			if d.LLE {
				exec = "LLE"
			}
			fmt.Printf("%-20s 0x%04X %-4s %s\n", d.Module, uint32(d.Module), exec, d.Rule)
		}
	}

	return nil
}

func printDecision(d policy.Decision, mode sysmodule.Mode) {
	fmt.Printf("Module: %s (0x%04X)\n", d.Module, uint32(d.Module))
	fmt.Printf("Mode:   %s\n", mode)
	if d.LLE {
		fmt.Printf("Policy: LLE (%s)\n", d.Rule)
	} else {
		fmt.Printf("Policy: HLE (%s)\n", d.Rule)
	}
	if d.MatchedPath != "" {
		fmt.Printf("Match:  %s\n", d.MatchedPath)
	}
	if paths := catalog.Paths(d.Module); len(paths) > 0 {
		fmt.Printf("Paths:\n")
		for _, p := range paths {
			fmt.Printf("  %s\n", p)
		}
	}
}

func simulateLoads(ctx context.Context, cfg *config.Config, names []string) error {
	loader := kernel.NewLoader(nil, cfg, nil)

	for _, name := range names {
		name = strings.TrimSpace(name)
		id, ok := catalog.ByName(name)
		if !ok {
			return fmt.Errorf("unknown module %q", name)
		}

		res, err := loader.Load(ctx, id)
		if err != nil {
			return err
		}

		exec := "HLE"
		if res.Decision.LLE {
			exec = "LLE"
		}
		if res.AlreadyLoaded {
			fmt.Printf("%-20s already loaded\n", id)
		} else {
			fmt.Printf("%-20s loaded as %s (%s)\n", id, exec, res.Decision.Rule)
		}
	}

	fmt.Printf("\n%d module(s) loaded this session\n", loader.Loaded().Len())
	return nil
}
