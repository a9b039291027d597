// sike is a small operational tool around the library: it generates KEM
// keypairs, encapsulates against a public key and decapsulates locally
// stored ciphertexts. Keys live in a folder as TOML files.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	json "github.com/nikkolasg/hexjson"
	"github.com/urfave/cli/v2"

	"github.com/drand/sike/entropy"
	"github.com/drand/sike/kem"
	"github.com/drand/sike/key"
	"github.com/drand/sike/log"
	"github.com/drand/sike/params"
)

// default output of the operational commands
var output io.Writer = os.Stdout

// Automatically set through -ldflags
var (
	version   = "master"
	gitCommit = "none"
	buildDate = "unknown"
)

var schemeFlag = &cli.StringFlag{
	Name:  "scheme",
	Value: params.DefaultSchemeID,
	Usage: "Parameter set to use: sikep434, sikep503, sikep610 or sikep751.",
}

var folderFlag = &cli.StringFlag{
	Name:  "folder",
	Value: ".",
	Usage: "Folder holding the keypair files, with absolute path.",
}

var sourceFlag = &cli.StringFlag{
	Name:  "source",
	Usage: "Path of an executable producing entropy on stdout; the system generator is used when unset.",
}

var verboseFlag = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "If set, verbosity is at the debug level.",
}

func main() {
	app := &cli.App{
		Name:    "sike",
		Version: fmt.Sprintf("%v (date %v, commit %v)", version, buildDate, gitCommit),
		Usage:   "supersingular isogeny key encapsulation tool",
		Commands: []*cli.Command{
			{
				Name:   "generate-keypair",
				Usage:  "Generate a KEM keypair and save it in the key folder.",
				Flags:  []cli.Flag{schemeFlag, folderFlag, sourceFlag, verboseFlag},
				Action: keygenCmd,
			},
			{
				Name:      "encapsulate",
				Usage:     "Derive a fresh shared key for the given public key file.",
				ArgsUsage: "<public-key-file>",
				Flags:     []cli.Flag{sourceFlag, verboseFlag},
				Action:    encapsulateCmd,
			},
			{
				Name:      "decapsulate",
				Usage:     "Recover the shared key from a hex ciphertext with the stored keypair.",
				ArgsUsage: "<hex-ciphertext>",
				Flags:     []cli.Flag{folderFlag, verboseFlag},
				Action:    decapsulateCmd,
			},
			{
				Name:   "info",
				Usage:  "Print the sizes and exponents of a parameter set.",
				Flags:  []cli.Flag{schemeFlag},
				Action: infoCmd,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logger(c *cli.Context) log.Logger {
	level := log.InfoLevel
	if c.Bool(verboseFlag.Name) {
		level = log.DebugLevel
	}
	return log.New(nil, level, false)
}

func oracle(c *cli.Context) io.Reader {
	if path := c.String(sourceFlag.Name); path != "" {
		return entropy.NewScriptReader(path)
	}
	return nil
}

func keygenCmd(c *cli.Context) error {
	l := logger(c)
	prm, err := params.ByName(c.String(schemeFlag.Name))
	if err != nil {
		return err
	}
	l.Infow("generating keypair", "scheme", prm.Name)
	pair, err := key.NewPair(prm, oracle(c))
	if err != nil {
		return err
	}
	store := key.NewFileStore(c.String(folderFlag.Name), l)
	if err := store.SaveKeyPair(pair); err != nil {
		return err
	}
	fmt.Fprintf(output, "Generated keypair for %s.\nPublic key: %s\nPrivate key: %s\n",
		prm.Name, store.PublicFile, store.PrivateFile)
	return nil
}

func encapsulateCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("encapsulate expects one public key file")
	}
	store := &key.FileStore{PublicFile: c.Args().First()}
	pub, err := store.LoadPublic()
	if err != nil {
		return err
	}
	k := kem.New(params.MustByName(pub.Scheme))
	ct, shared, err := k.Encapsulate(pub.Key, oracle(c))
	if err != nil {
		return err
	}
	return printJSON(struct {
		Scheme     string `json:"scheme"`
		Ciphertext []byte `json:"ciphertext"`
		SharedKey  []byte `json:"shared_key"`
	}{pub.Scheme, ct, shared})
}

func decapsulateCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("decapsulate expects one hex ciphertext")
	}
	ct, err := hex.DecodeString(c.Args().First())
	if err != nil {
		return fmt.Errorf("parsing ciphertext: %w", err)
	}
	store := key.NewFileStore(c.String(folderFlag.Name), logger(c))
	pair, err := store.LoadKeyPair()
	if err != nil {
		return err
	}
	k := kem.New(params.MustByName(pair.Scheme))
	shared, err := k.Decapsulate(pair.Priv, ct)
	if err != nil {
		return err
	}
	return printJSON(struct {
		Scheme    string `json:"scheme"`
		SharedKey []byte `json:"shared_key"`
	}{pair.Scheme, shared})
}

func infoCmd(c *cli.Context) error {
	prm, err := params.ByName(c.String(schemeFlag.Name))
	if err != nil {
		return err
	}
	k := kem.New(prm)
	return printJSON(struct {
		Scheme        string `json:"scheme"`
		PrimeBits     int    `json:"prime_bits"`
		E2            uint   `json:"e2"`
		E3            uint   `json:"e3"`
		PublicKeySize int    `json:"public_key_size"`
		CiphertextLen int    `json:"ciphertext_size"`
		SharedKeyLen  int    `json:"shared_key_size"`
	}{prm.Name, prm.P.BitLen(), prm.E2, prm.E3, prm.PublicKeySize(), k.CiphertextSize(), k.SharedSecretSize()})
}

func printJSON(v interface{}) error {
	buff, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}
	fmt.Fprintln(output, string(buff))
	return nil
}
