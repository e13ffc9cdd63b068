package config

import "github.com/namsral/flag"

type Config struct {
	BoardSize   int
	Debug       bool
	BotName     string
	HistoryFile string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("flipside", flag.ContinueOnError)
	fs.IntVar(&c.BoardSize, "board-size", 8, "board dimension for shell and self-play games")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	fs.StringVar(&c.BotName, "bot-name", "flipside", "identification line sent to the game manager")
	fs.StringVar(&c.HistoryFile, "history-file", "/tmp/flipside-readline.tmp", "shell history file")
	err := fs.Parse(args)
	return err
}
