package main

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/getsentry/raven-go"
	_ "github.com/mattn/go-sqlite3"
	"github.com/seqtools/go-fasta/fasta"
	"github.com/urfave/cli"
)

func openSourceConfig(sourceName string) *fasta.SourceConfig {
	fname := os.Getenv("GOFASTA_CONFIG")
	if fname == "" {
		log.Fatalln("GOFASTA_CONFIG not specified")
	}

	f, err := os.Open(fname)
	if err != nil {
		log.Fatalln("Failed to open config", err)
	}
	defer f.Close()

	c, err := fasta.NewConfigFromFile(f)
	if err != nil {
		log.Fatalln("Failed to load config", err)
	}

	sc, err := c.ConfigForName(sourceName)
	if err != nil {
		log.Fatalln("Failed to load config for source", err)
	}

	return sc
}

func openDB(fname string) *sql.DB {
	db, err := sql.Open("sqlite3", fname)
	if err != nil {
		log.Fatalln("Failed to open db", err)
	}

	// only for sqlite
	db.SetMaxOpenConns(1)

	return db
}

func openS3(regionName string) fasta.S3Service {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(regionName),
	}))
	return s3.New(sess)
}

// Loop on records read from r, rendering each to stdout. Read failures are
// reported to sentry with the source name attached.
func catRecords(r fasta.RecordReader, sourceName string, wrap int) error {
	for {
		rec, err := r.ReadRecord()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			detailedError := fmt.Sprintf("Error reading record: %v", err)
			log.Println(detailedError)
			raven.CaptureError(err,
				map[string]string{
					"source":        sourceName,
					"error_message": detailedError})
			return err
		}

		fmt.Print(rec.Format(wrap))
	}
}

// Cat Command
//
// Decode each named file (plain, gzip, bzip2 or zip) and print its
// records re-wrapped to the requested width.
func cat(names []string, wrap int) error {
	for _, name := range names {
		f, err := fasta.Open(name)
		if err != nil {
			log.Println("Failed to open", name, err)
			return err
		}

		err = catRecords(f, name, wrap)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func catSource(sourceName string, wrapOverride int, haveWrap bool) error {
	sc := openSourceConfig(sourceName)
	wrap := sc.WrapWidth()
	if haveWrap {
		wrap = wrapOverride
	}

	if sc.Bucket != "" {
		svc := openS3(sc.RegionName)
		r, err := fasta.NewStoreReader(svc, sc.Bucket, sc.Prefix)
		if err != nil {
			return err
		}
		return catRecords(r, sourceName, wrap)
	}

	return cat([]string{sc.Path}, wrap)
}

// Head Command
//
// Print just the first record of the file.
func head(name string) error {
	rec, err := fasta.Read(name)
	if err != nil {
		return err
	}

	fmt.Println(rec)
	return nil
}

// Dict Command
//
// Build the uniqueness-checked collection across all named files and
// report it; optionally persist the records to a sqlite db.
func dict(names []string, dbName string) error {
	readers := make([]fasta.RecordReader, 0, len(names))
	files := make([]*fasta.File, 0, len(names))
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	for _, name := range names {
		f, err := fasta.Open(name)
		if err != nil {
			log.Println("Failed to open", name, err)
			return err
		}
		files = append(files, f)
		readers = append(readers, f)
	}

	r := fasta.NewSerialReader(readers)

	if dbName != "" {
		db := openDB(dbName)
		defer db.Close()

		store, err := fasta.NewRecordStore(db)
		if err != nil {
			return err
		}

		n, err := store.StoreAll(r)
		if err != nil {
			raven.CaptureError(err, map[string]string{"db": dbName})
			return err
		}
		log.Printf("Stored %d records to %s", n, dbName)
		return nil
	}

	d, err := fasta.ToDict(r)
	if err != nil {
		return err
	}

	fmt.Printf("%d records\n", len(d))
	for id, rec := range d {
		fmt.Printf("%s\t%d\t%s\n", id, rec.Len(), rec.Desc)
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "gofasta"
	app.Usage = "Utilities for reading FASTA sequence data"
	app.Version = "0.0.1"
	app.Commands = []cli.Command{
		{
			Name:    "cat",
			Aliases: []string{"c"},
			Usage:   "print records from FASTA files (compressed or not)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "wrap",
					Usage: "Sequence line width, 0 for unwrapped",
					Value: fasta.DefaultWrap,
				},
				cli.StringFlag{
					Name:  "source",
					Usage: "Named source from config",
				},
			},
			Action: func(c *cli.Context) error {
				if c.String("source") != "" {
					return catSource(c.String("source"), c.Int("wrap"), c.IsSet("wrap"))
				}
				if c.NArg() == 0 {
					fmt.Fprintln(os.Stderr, "file name required")
					cli.ShowSubcommandHelp(c)
					os.Exit(1)
				}
				return cat(c.Args(), c.Int("wrap"))
			},
		},
		{
			Name:  "head",
			Usage: "print the first record of a FASTA file",
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					fmt.Fprintln(os.Stderr, "file name required")
					cli.ShowSubcommandHelp(c)
					os.Exit(1)
				}
				return head(c.Args().First())
			},
		},
		{
			Name:  "dict",
			Usage: "build an id-keyed collection from FASTA files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "db",
					Usage:  "Persist records to this sqlite db",
					EnvVar: "GOFASTA_DB",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					fmt.Fprintln(os.Stderr, "file name required")
					cli.ShowSubcommandHelp(c)
					os.Exit(1)
				}
				return dict(c.Args(), c.String("db"))
			},
		},
		{
			Name:  "archive-cat",
			Usage: "print records from S3 record archives",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "bucket",
					Usage:  "Source S3 bucket",
					EnvVar: "GOFASTA_BUCKET",
				},
				cli.StringFlag{
					Name:  "prefix",
					Usage: "Archive key prefix",
				},
				cli.StringFlag{
					Name:  "region",
					Usage: "AWS region",
					Value: "us-west-1",
				},
				cli.IntFlag{
					Name:  "wrap",
					Usage: "Sequence line width, 0 for unwrapped",
					Value: fasta.DefaultWrap,
				},
			},
			Action: func(c *cli.Context) error {
				if c.String("bucket") == "" {
					fmt.Fprintln(os.Stderr, "bucket name required")
					cli.ShowSubcommandHelp(c)
					os.Exit(1)
				}

				svc := openS3(c.String("region"))
				r, err := fasta.NewStoreReader(svc, c.String("bucket"), c.String("prefix"))
				if err != nil {
					return err
				}
				return catRecords(r, c.String("bucket")+"/"+c.String("prefix"), c.Int("wrap"))
			},
		},
	}

	app.Run(os.Args)
}
