// Command amfdemo exercises keygen/frank/verify/judge and the wire codec
// end to end. It is a caller built atop the amf library, not part of the
// core (the core has no CLI surface of its own).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/go-amf/amf/amf"
	"github.com/go-amf/amf/internal/amflog"
)

var messageFlag = &cli.StringFlag{
	Name:  "message",
	Usage: "message to frank",
	Value: "hello world!",
}

var logLevelFlag = &cli.StringFlag{
	Name:  "log-level",
	Usage: "zerolog level: debug, info, warn, error",
	Value: "info",
}

func banner() {
	fmt.Fprintln(os.Stdout, "amfdemo — asymmetric message franking, Tyagi et al. 2019/565")
}

func demoCmd(c *cli.Context) error {
	amflog.Init(c.String(logLevelFlag.Name))
	log := amflog.Logger()
	message := []byte(c.String(messageFlag.Name))

	pkS, skS, err := amf.Keygen(amf.RoleSender)
	if err != nil {
		return fmt.Errorf("keygen sender: %w", err)
	}
	pkR, skR, err := amf.Keygen(amf.RoleRecipient)
	if err != nil {
		return fmt.Errorf("keygen recipient: %w", err)
	}
	pkJ, skJ, err := amf.Keygen(amf.RoleJudge)
	if err != nil {
		return fmt.Errorf("keygen judge: %w", err)
	}
	log.Info().Msg("generated sender, recipient, and judge keypairs")

	start := time.Now()
	sig, err := amf.Frank(skS, pkS, pkR, pkJ, message)
	if err != nil {
		return fmt.Errorf("frank: %w", err)
	}
	// Vestigial nod to the original prototype's benchmark habit; this is
	// not a real benchmark suite (no warmup, no repetition).
	log.Info().Dur("elapsed", time.Since(start)).Msg("frank")

	wire := amf.EncodeSignature(sig)
	log.Info().Int("bytes", len(wire)).Msg("encoded signature")

	decoded, err := amf.DecodeSignature(wire)
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}

	start = time.Now()
	verified := amf.Verify(skR, pkS, pkR, pkJ, message, decoded)
	log.Info().Dur("elapsed", time.Since(start)).Bool("verified", verified).Msg("verify")

	start = time.Now()
	judged := amf.Judge(skJ, pkS, pkR, pkJ, message, decoded)
	log.Info().Dur("elapsed", time.Since(start)).Bool("judged", judged).Msg("judge")

	if !verified || !judged {
		return fmt.Errorf("demo signature failed to verify or judge")
	}
	return nil
}

func keygenCmd(c *cli.Context) error {
	amflog.Init(c.String(logLevelFlag.Name))

	roleName := c.Args().First()
	var role amf.Role
	switch roleName {
	case "sender":
		role = amf.RoleSender
	case "recipient":
		role = amf.RoleRecipient
	case "judge":
		role = amf.RoleJudge
	default:
		return fmt.Errorf("usage: amfdemo keygen <sender|recipient|judge>")
	}

	pk, sk, err := amf.Keygen(role)
	if err != nil {
		return fmt.Errorf("keygen: %w", err)
	}
	fmt.Printf("public key:  %x\n", amf.EncodePublicKey(pk))
	fmt.Printf("secret key:  %x\n", amf.EncodeSecretKey(sk))
	return nil
}

func app() *cli.App {
	a := cli.NewApp()
	a.Name = "amfdemo"
	a.Usage = "demonstrate the asymmetric message franking SPoK engine"
	a.Flags = []cli.Flag{logLevelFlag}
	a.Commands = []*cli.Command{
		{
			Name:   "demo",
			Usage:  "run keygen, frank, encode, decode, verify, and judge end to end",
			Flags:  []cli.Flag{messageFlag},
			Action: demoCmd,
		},
		{
			Name:      "keygen",
			Usage:     "generate a keypair for a role and print it hex-encoded",
			ArgsUsage: "<sender|recipient|judge>",
			Action:    keygenCmd,
		},
	}
	return a
}

func main() {
	banner()
	if err := app().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "amfdemo:", err)
		os.Exit(1)
	}
}
