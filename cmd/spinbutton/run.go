package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/spinbutton/internal/binding"
	"github.com/muurk/spinbutton/internal/logging"
	"github.com/muurk/spinbutton/internal/spinbutton"
	"github.com/muurk/spinbutton/internal/ui"
)

// Binding flags
var (
	listenAddr string
	advertise  bool
)

func init() {
	rootCmd.Flags().StringVar(&listenAddr, "listen", "", "Serve the value over WebSocket on this address (e.g. :7070)")
	rootCmd.Flags().BoolVar(&advertise, "advertise", false, "Announce the WebSocket binding over mDNS")
}

func runWidget(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	if prefs := reg.Preferences; prefs != nil {
		if !cmd.Flags().Changed("listen") {
			listenAddr = prefs.Listen
		}
		if !cmd.Flags().Changed("advertise") {
			advertise = prefs.Advertise
		}
	}

	pub := &publisher{}
	widget, err := buildWidget(cmd, reg, spinbutton.WithOnChange(pub.publish))
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(widget, pub),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	if listenAddr != "" {
		hub := binding.NewHub(widget.ID(), widget.Value(), func(c binding.Command) {
			p.Send(bindingMsg(c))
		})
		pub.set(hub)
		srv, err := binding.Listen(listenAddr, hub)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logging.Warn("Binding server shutdown failed", zap.Error(err))
			}
		}()

		if advertise {
			ad, err := binding.Advertise(instanceName(widget.ID()), widget.ID(), srv.Port())
			if err != nil {
				return err
			}
			defer ad.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("widget failed: %w", err)
	}

	if field, ok := widget.HiddenField(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", field.Name, field.Value)
	}
	return nil
}

// publisher forwards values stored by the event loop to the hub, once one
// is listening.
type publisher struct {
	mu  sync.Mutex
	hub *binding.Hub
}

func (p *publisher) set(hub *binding.Hub) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hub = hub
}

func (p *publisher) publish(v spinbutton.Value) {
	p.mu.Lock()
	hub := p.hub
	p.mu.Unlock()
	if hub != nil {
		hub.Publish(v)
	}
}

// newModel wraps widget so that both its changes and external assignments
// reach pub from the event loop.
func newModel(widget *spinbutton.Widget, pub *publisher) ui.Model {
	return ui.NewModel(widget).WithOnExternal(pub.publish)
}

// bindingMsg converts a remote command into the message the model handles.
func bindingMsg(c binding.Command) tea.Msg {
	switch c.Kind {
	case binding.CommandIncrement:
		return ui.StepMsg{Button: spinbutton.ButtonIncrement}
	case binding.CommandDecrement:
		return ui.StepMsg{Button: spinbutton.ButtonDecrement}
	default:
		return ui.SetValueMsg{Value: c.Value}
	}
}

// instanceName is the mDNS instance name of this process's binding.
func instanceName(id string) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return id
	}
	return host + " " + id
}
