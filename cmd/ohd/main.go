package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"ohd/internal/di"
	"ohd/internal/services"
	"ohd/internal/structures"

	_ "time/tzdata"
)

func parseFlags(args []string) (*structures.CliFlags, error) {
	flags := &structures.CliFlags{}
	fs := pflag.NewFlagSet("ohd", pflag.ContinueOnError)
	fs.StringVarP(&flags.ConfigPath, "config", "c", "config/config.yaml", "path to the YAML config file")
	fs.BoolVarP(&flags.DebugMode, "debug", "d", false, "mirror logs to the console")
	fs.BoolVar(&flags.Render, "render", false, "print the weekly opening hours and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

func render(w io.Writer, service services.ScheduleServiceInterface) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range service.Display(service.GetOpeningTimes(), service.Today()) {
		label := row.Label
		if row.Today {
			label += " (today)"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", label, row.Hours); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func run(args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.Render {
		service, err := di.InitScheduleService(flags)
		if err != nil {
			return err
		}
		return render(os.Stdout, service)
	}

	_, err = di.InitApp(flags)
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ohd: %s\n", err)
		os.Exit(1)
	}
}
