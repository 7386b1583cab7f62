package main

import (
	"fmt"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"

	"github.com/matt-g-everett/animtx/api"
	"github.com/matt-g-everett/animtx/preview"
	"github.com/matt-g-everett/animtx/stream"
)

var (
	configPath string
	apiAddr    string
)

var rootCmd = &cobra.Command{
	Use:   "animtx",
	Short: "Time-driven LED animation engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		return preview.Run()
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the easing catalog in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return preview.Run()
	},
}

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Stream animation frames to an ledrx device over MQTT",
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().run()
	},
}

type app struct {
	config   stream.Config
	client   mqtt.Client
	streamer *stream.Streamer
}

func newApp() *app {
	return new(app)
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Printf("connected to %s", a.config.Mqtt.URL)
	a.streamer.Subscribe()
}

func (a *app) run() error {
	mqtt.ERROR = log.New(os.Stderr, "", log.LstdFlags)

	config, err := stream.LoadConfig(configPath)
	if err != nil {
		return err
	}
	a.config = *config

	options := mqtt.NewClientOptions().
		AddBroker(config.Mqtt.URL).
		SetClientID("animtx").
		SetUsername(config.Mqtt.Username).
		SetPassword(config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.client = mqtt.NewClient(options)

	a.streamer, err = stream.NewStreamer(a.config, a.client)
	if err != nil {
		return err
	}

	go func() {
		srv := api.NewApi(apiAddr, a.streamer)
		if err := srv.Serve(); err != nil {
			log.Printf("api: %v", err)
		}
	}()

	if token := a.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect %s: %w", config.Mqtt.URL, token.Error())
	}

	a.streamer.Run()
	return nil
}

func init() {
	streamCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the yaml config file")
	streamCmd.Flags().StringVar(&apiAddr, "api-addr", ":3000", "listen address for the status api")
	rootCmd.AddCommand(previewCmd, streamCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
