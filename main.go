package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/parcelfair/assessment-api/analyzer"
	"github.com/parcelfair/assessment-api/matcher"
	"github.com/parcelfair/assessment-api/store"
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stderr)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("assessment")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string
	var parcelID string
	var includeComparables bool

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.StringVar(&parcelID, "p", "", "parcel id of the subject property")
	flag.BoolVar(&includeComparables, "comparables", false, "include the ranked comparable list in the output")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if parcelID == "" {
		log.Fatal("no parcel id given, use -p")
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	propertyStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	defer propertyStore.Close()

	cfg := analyzer.DefaultConfig()
	if r := viper.GetFloat64("tax.mill_rate"); r > 0 {
		cfg.MillRate = r
	}
	if r := viper.GetFloat64("tax.assessment_ratio"); r > 0 {
		cfg.AssessmentRatio = r
	}

	engine := analyzer.New(propertyStore, matcher.New(propertyStore, matcher.DefaultConfig()), cfg)
	log.WithField("prefix", "init").Info("Initialized assessment analyzer")

	result, err := engine.Analyze(parcelID, analyzer.AnalyzeOptions{
		IncludeComparables: includeComparables,
	})
	if err != nil {
		switch err {
		case analyzer.ErrPropertyNotFound:
			log.Fatalf("parcel %s not found", parcelID)
		case analyzer.ErrNoComparables:
			log.Fatalf("insufficient data to assess parcel %s", parcelID)
		default:
			sentry.CaptureException(err)
			log.Fatal(err)
		}
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
