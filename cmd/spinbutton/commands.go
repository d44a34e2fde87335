package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/spinbutton/internal/binding"
	"github.com/muurk/spinbutton/internal/logging"
	"github.com/muurk/spinbutton/internal/spinbutton"
	"github.com/muurk/spinbutton/internal/ui"
)

// Command flags
var (
	attrsKeys     []string
	attrsFormat   string
	scanTimeout   int
	profileDesc   string
	profileSetDef bool
)

func init() {
	rootCmd.AddCommand(attrsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(remoteCmd)

	attrsCmd.Flags().StringSliceVar(&attrsKeys, "keys", nil, "Events to apply first: up,down,home,end,inc,dec,focus,blur")
	attrsCmd.Flags().StringVar(&attrsFormat, "format", "table", "Output format (table, yaml)")

	discoverCmd.Flags().IntVar(&scanTimeout, "timeout", 5, "Scan timeout in seconds")

	profileSaveCmd.Flags().StringVar(&profileDesc, "description", "", "Profile description")
	profileSaveCmd.Flags().BoolVar(&profileSetDef, "default", false, "Use this profile when --profile is not given")
	profileCmd.AddCommand(profileListCmd, profileShowCmd, profileSaveCmd, profileDeleteCmd)

	remoteCmd.AddCommand(remoteSetCmd, remoteIncCmd, remoteDecCmd, remoteWatchCmd)
}

// attrsCmd prints the derived attributes without running the widget
var attrsCmd = &cobra.Command{
	Use:   "attrs",
	Short: "Print the accessibility attributes of a widget",
	Long: `Build the widget from flags and profile, apply a sequence of events,
and print the resulting attributes, buttons, form field and layout.`,
	Example: `  # Attributes after two increments from nothing
  spinbutton attrs --min 0 --max 5 --keys focus,up,up

  # Required widget without a value, as YAML
  spinbutton attrs --required --format yaml`,
	RunE: runAttrs,
}

// attrsReport is the attrs output.
type attrsReport struct {
	Value      string            `yaml:"value"`
	Display    string            `yaml:"display"`
	Attributes map[string]string `yaml:"attributes"`
	Buttons    []buttonReport    `yaml:"buttons"`
	Field      map[string]string `yaml:"field,omitempty"`
	Classes    []string          `yaml:"classes,omitempty"`
	Layout     []string          `yaml:"layout"`
}

type buttonReport struct {
	Button    string  `yaml:"button"`
	Label     string  `yaml:"label"`
	Controls  string  `yaml:"controls"`
	Disabled  bool    `yaml:"disabled"`
	IconScale float64 `yaml:"icon_scale"`
}

func runAttrs(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	w, err := buildWidget(cmd, reg)
	if err != nil {
		return err
	}
	if err := applyEvents(w, attrsKeys); err != nil {
		return err
	}

	report := buildReport(w)
	out := cmd.OutOrStdout()
	switch attrsFormat {
	case "yaml":
		return writeYAML(out, report)
	case "table":
		p := ui.NewPrinter(out)
		res := w.Resolved()
		p.PrintHeader("Spin button attributes", "spinbutton attrs", map[string]string{
			"Range":   fmt.Sprintf("%s..%s", spinbutton.ValueOf(res.Min), spinbutton.ValueOf(res.Max)),
			"Step":    spinbutton.ValueOf(res.Step).String(),
			"Value":   orNone(report.Value),
			"Display": orNone(report.Display),
		})
		p.PrintAttributes(report.Attributes)
		for _, b := range report.Buttons {
			p.Println(fmt.Sprintf("  %-18s label=%q disabled=%t scale=%.2f", b.Button+" button", b.Label, b.Disabled, b.IconScale))
		}
		if report.Field != nil {
			p.Println(fmt.Sprintf("  %-18s %s=%s", "field", report.Field["name"], report.Field["value"]))
		}
		p.Println(fmt.Sprintf("  %-18s %s", "classes", strings.Join(report.Classes, " ")))
		p.Println(fmt.Sprintf("  %-18s %s", "layout", strings.Join(report.Layout, " ")))
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table or yaml)", attrsFormat)
	}
}

// applyEvents replays named interaction events on w.
func applyEvents(w *spinbutton.Widget, events []string) error {
	for _, ev := range events {
		switch strings.ToLower(strings.TrimSpace(ev)) {
		case "up":
			w.HandleKey(spinbutton.KeyEvent{Key: spinbutton.KeyUp})
		case "down":
			w.HandleKey(spinbutton.KeyEvent{Key: spinbutton.KeyDown})
		case "home":
			w.HandleKey(spinbutton.KeyEvent{Key: spinbutton.KeyHome})
		case "end":
			w.HandleKey(spinbutton.KeyEvent{Key: spinbutton.KeyEnd})
		case "inc":
			w.Activate(spinbutton.ButtonIncrement)
		case "dec":
			w.Activate(spinbutton.ButtonDecrement)
		case "focus":
			w.Focus()
		case "blur":
			w.Blur()
		case "":
		default:
			return fmt.Errorf("unknown event %q", ev)
		}
	}
	return nil
}

func buildReport(w *spinbutton.Widget) attrsReport {
	r := attrsReport{
		Value:      w.FormattedValue(),
		Display:    w.DisplayText(),
		Attributes: w.Attributes().Map(),
		Classes:    w.Group().Classes(),
	}
	for _, b := range w.Buttons() {
		r.Buttons = append(r.Buttons, buttonReport{
			Button:    b.Button.String(),
			Label:     b.Label,
			Controls:  b.Controls,
			Disabled:  b.Disabled,
			IconScale: b.IconScale,
		})
	}
	if f, ok := w.HiddenField(); ok {
		r.Field = map[string]string{"name": f.Name, "value": f.Value}
		if f.Form != "" {
			r.Field["form"] = f.Form
		}
	}
	for _, part := range w.Layout() {
		r.Layout = append(r.Layout, part.String())
	}
	return r
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// profileCmd manages saved profiles
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved widget profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(reg.Profiles) == 0 {
			fmt.Fprintf(out, "No profiles in %s\n", reg.Path())
			return nil
		}
		names := make([]string, 0, len(reg.Profiles))
		for name := range reg.Profiles {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			marker := " "
			if reg.Preferences != nil && reg.Preferences.DefaultProfile == name {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-20s %s\n", marker, name, reg.Profiles[name].Description)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		p := reg.GetProfile(args[0])
		if p == nil {
			return fmt.Errorf("profile %q not found", args[0])
		}
		return writeYAML(cmd.OutOrStdout(), p)
	},
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current flags as a profile",
	Example: `  spinbutton profile save percent --min 0 --max 100 --step 5 --description "Percentages"
  spinbutton profile save percent --default`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		name := args[0]
		if profileName == "" && reg.GetProfile(name) != nil {
			profileName = name
		}
		p, err := resolveProfile(cmd, reg)
		if err != nil {
			return err
		}
		if _, err := widgetConfig(p); err != nil {
			return err
		}
		if cmd.Flags().Changed("description") {
			p.Description = profileDesc
		}
		reg.SetProfile(name, p)
		if profileSetDef {
			reg.Preferences.DefaultProfile = name
		}
		if err := reg.Save(); err != nil {
			return err
		}
		logging.Info("Profile saved",
			zap.String("profile", name),
			zap.String("path", reg.Path()),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %q to %s\n", name, reg.Path())
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		if !reg.DeleteProfile(args[0]) {
			return fmt.Errorf("profile %q not found", args[0])
		}
		if err := reg.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %q\n", args[0])
		return nil
	},
}

// discoverCmd finds advertised bindings
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find spin buttons shared on the network",
	Long: `Browse mDNS for spin buttons started with --listen --advertise and
print their WebSocket URLs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Scanning for spin buttons (timeout: %ds)...\n\n", scanTimeout)

		scanner := binding.NewScanner()
		scanner.Timeout = time.Duration(scanTimeout) * time.Second
		endpoints, err := scanner.Scan(cmd.Context())
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		if len(endpoints) == 0 {
			fmt.Fprintln(out, "No spin buttons found.")
			return nil
		}

		fmt.Fprintf(out, "Found %d spin button(s):\n\n", len(endpoints))
		for i, ep := range endpoints {
			fmt.Fprintf(out, "%d. %s\n", i+1, ep.WidgetID)
			fmt.Fprintf(out, "   Host: %s\n", ep.Hostname)
			fmt.Fprintf(out, "   URL:  %s\n\n", ep.URL())
		}
		fmt.Fprintln(out, "Use 'spinbutton remote watch <url>' to follow a value")
		return nil
	},
}

// remoteCmd drives a running widget over its binding
var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Control a spin button started with --listen",
}

var remoteSetCmd = &cobra.Command{
	Use:   "set <url> <value>",
	Short: "Assign the value (use null to clear it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseValue(args[1])
		if err != nil {
			return err
		}
		return withClient(cmd, args[0], "set "+orNone(v.String()), func(c *binding.Client) error {
			return c.Set(v)
		})
	},
}

var remoteIncCmd = &cobra.Command{
	Use:   "increment <url>",
	Short: "Press the increment button",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, args[0], "increment", (*binding.Client).Increment)
	},
}

var remoteDecCmd = &cobra.Command{
	Use:   "decrement <url>",
	Short: "Press the decrement button",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, args[0], "decrement", (*binding.Client).Decrement)
	},
}

var remoteWatchCmd = &cobra.Command{
	Use:   "watch <url>",
	Short: "Print the value each time it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		c, err := binding.Dial(ctx, args[0])
		if err != nil {
			return err
		}
		go func() {
			<-ctx.Done()
			_ = c.Close()
		}()

		out := cmd.OutOrStdout()
		for {
			msg, err := c.Next()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("connection lost: %w", err)
			}
			fmt.Fprintf(out, "%s %s\n", msg.ID, orNone(msg.Value.String()))
		}
	},
}

// withClient dials url and runs fn once the widget has sent its snapshot.
func withClient(cmd *cobra.Command, url, action string, fn func(*binding.Client) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	c, err := binding.Dial(ctx, url)
	if err != nil {
		return err
	}
	defer c.Close()

	snapshot, err := c.Next()
	if err != nil {
		return fmt.Errorf("no snapshot from %s: %w", url, err)
	}
	if err := fn(c); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: sent %s (value was %s)\n", snapshot.ID, action, orNone(snapshot.Value.String()))
	return nil
}
