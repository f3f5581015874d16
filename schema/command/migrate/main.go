package main

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/parcelfair/assessment-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("assessment")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
