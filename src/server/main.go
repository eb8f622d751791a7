package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/tinyfacts/tinyfacts/src/tinyfacts"
	"github.com/tinyfacts/tinyfacts/src/tinyfacts/db"
	"github.com/tinyfacts/tinyfacts/src/wordforms"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	conf, wordFormsPath, httpAddr := readConfig()

	words, err := wordforms.Open(wordFormsPath)
	if err != nil {
		log.Fatalf("could not load word forms: %v", err)
	}
	log.Printf("loaded %d base words from %s", words.Dictionary().Len(), wordFormsPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := words.Watch(ctx, 300*time.Millisecond); err != nil {
		log.Fatalf("could not watch word forms file: %v", err)
	}

	sqlDB, err := sql.Open("sqlite3", conf.DBPath)
	if err != nil {
		log.Fatalf("could not open database %s: %v", conf.DBPath, err)
	}
	defer sqlDB.Close()
	if err := db.BootstrapDB(sqlDB); err != nil {
		log.Fatalf("could not bootstrap database: %v", err)
	}

	if httpAddr != "" {
		go func() {
			log.Printf("serving word check API on %s", httpAddr)
			if err := http.ListenAndServe(httpAddr, tinyfacts.NewAPIHandler(words)); err != nil {
				log.Fatalf("could not serve API: %v", err)
			}
		}()
	}

	checker := tinyfacts.NewFactChecker(conf, words, sqlDB)
	err = checker.Open()
	if err != nil {
		log.Fatalf("error opening bot: %v", err)
	}

	log.Println("Bot is now running.  Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Cleanly close down the Discord session.
	err = checker.Close()
	if err != nil {
		log.Println("error closing session,", err)
	}
}

func readConfig() (tinyfacts.Config, string, string) {
	viper.SetDefault("reactClean", true)
	viper.SetDefault("reactViolation", false)
	viper.SetDefault("deleteViolation", false)
	viper.SetDefault("explainViolation", true)
	viper.SetDefault("serveRandomFact", true)
	viper.SetDefault("positiveReacts", []string{"💯", "✅", "🌟"})
	viper.SetDefault("negativeReacts", []string{"🚫", "⛔"})
	viper.SetDefault("dbPath", "./tinyfacts.sqlite3")
	viper.SetDefault("wordFormsPath", "./word-forms.json")
	viper.SetDefault("httpAddr", ":8080")
	viper.SetDefault("debug", false)

	viper.SetEnvPrefix("TINYFACTS")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath("/etc/tinyfacts")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		log.Println("no config file found, using defaults,", err)
	}
	flags := db.ConfigFlag(0)
	if viper.GetBool("reactClean") {
		flags |= db.ConfigReactToClean
	}
	if viper.GetBool("reactViolation") {
		flags |= db.ConfigReactToViolation
	}
	if viper.GetBool("deleteViolation") {
		flags |= db.ConfigDeleteViolation
	}
	if viper.GetBool("explainViolation") {
		flags |= db.ConfigExplainViolation
	}
	if viper.GetBool("serveRandomFact") {
		flags |= db.ConfigServeRandomFact
	}
	return tinyfacts.Config{
		Token:          viper.GetString("token"),
		DBPath:         viper.GetString("dbPath"),
		DefaultFlags:   flags,
		PositiveReacts: viper.GetStringSlice("positiveReacts"),
		NegativeReacts: viper.GetStringSlice("negativeReacts"),
		Debug:          viper.GetBool("debug"),
	}, viper.GetString("wordFormsPath"), viper.GetString("httpAddr")
}
