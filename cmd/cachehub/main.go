package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-cachehub/cachehub"
	"github.com/go-cachehub/cachehub/cmd/cachehub/config"
	"github.com/go-cachehub/cachehub/internal/logger"
	"github.com/go-cachehub/cachehub/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cachehub",
	Short: "cachehub validates and inspects cache provider configuration",
	Long:  "cachehub validates and inspects cache provider configuration",
}

var configFile string

func loadConfig() *config.Config {
	config.Load(configFile)
	logger.Init()
	return config.Get()
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "validate checks the cache configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := loadConfig()
		t := c.Cache.EffectiveType()
		if location, ok := c.Cache.ConfigLocation(t); ok {
			resolved, err := c.Cache.ResolveConfigLocation(location)
			if err != nil {
				return err
			}
			if resolved != "" {
				log.Infof("using %s configuration from '%s'", t, resolved)
			}
		}
		log.Infof("cache configuration is valid, effective type is '%s'", t)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "show prints the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := loadConfig()
		out, err := yaml.Marshal(c)
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Print(string(out))
		return nil
	},
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "probe checks connectivity to the configured cache backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := loadConfig()
		t := c.Cache.EffectiveType()
		if t != cachehub.CacheTypeRedis {
			return errors.Errorf("cache type '%s' does not support connectivity probes", t)
		}
		client := redis.NewClient(c.Cache.Redis.Options())
		defer client.Close()
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Wrap(err, "could not reach redis")
		}
		log.Info("redis is reachable")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "version prints the cachehub version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.VERSION)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "the config file to use")
	rootCmd.AddCommand(validateCmd, showCmd, probeCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
