/*
Package properties is an in-memory key / value store for ".properties"
style configuration text.

The format is line-oriented, one property per line:

	HttpPort = 8081
	LogLevel = Debug,Info,Warn
	MongoServer = mongodb://10.11.1.5,10.11.1.6,10.11.1.7/?replicaSet=mytest

Blank lines and lines starting with "#", "//" or "/*" are skipped when
reading and never written. A value can encode a list of strings joined
with "," (there is no escaping for a literal "," inside an element).

A store is safe for concurrent use: multiple goroutines can share one
without external synchronization.

	p := properties.New()
	p.SetProperty("HttpPort", "8081")
	p.SetPropertySlice("LogLevel", []string{"Debug", "Info", "Warn"})
	err := p.StoreToFile("config.properties")

LoadFromFile / StoreToFile transparently handle gzip, zstd and brotli
compression based on the file extension (".gz", ".zstd", ".br").
*/
package properties
