package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/jo4ovms/psychology-project/cmd/app/commands"
	"github.com/jo4ovms/psychology-project/internal/app"
	cryptoService "github.com/jo4ovms/psychology-project/internal/crypto/service"
)

func getCryptoCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-encryption-secret",
			Usage: "Generate a new ENCRYPTION_SECRET, optionally wrapped by a KMS key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "kms-provider",
					Value: "",
					Usage: "KMS provider (localsecrets, gcpkms, awskms, azurekeyvault, hashivault)",
				},
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Value: "",
					Usage: "KMS key URI (e.g., base64key://, gcpkms://projects/.../cryptoKeys/...)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					return commands.RunCreateEncryptionSecret(
						ctx,
						cryptoService.NewKMSService(),
						container.Logger(),
						cmd.Root().Writer,
						cmd.String("kms-provider"),
						cmd.String("kms-key-uri"),
					)
				})
			},
		},
		{
			Name:  "encrypt-field",
			Usage: "Encrypt a value with the configured secret for the given user",
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:     "user-id",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Owner user ID used for key derivation",
				},
				&cli.StringFlag{
					Name:     "value",
					Required: true,
					Usage:    "Plaintext to encrypt",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					cipher, err := container.FieldCipher()
					if err != nil {
						return err
					}
					return commands.RunEncryptField(
						cipher,
						cmd.Root().Writer,
						cmd.Int64("user-id"),
						cmd.String("value"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "decrypt-field",
			Usage: "Decrypt a stored field with the configured secret for the given user",
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:     "user-id",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Owner user ID used for key derivation",
				},
				&cli.StringFlag{
					Name:     "encrypted-text",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Hex ciphertext with the authentication tag appended",
				},
				&cli.StringFlag{
					Name:     "iv",
					Required: true,
					Usage:    "Hex initialization vector",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					cipher, err := container.FieldCipher()
					if err != nil {
						return err
					}
					return commands.RunDecryptField(
						cipher,
						cmd.Root().Writer,
						cmd.Int64("user-id"),
						cmd.String("encrypted-text"),
						cmd.String("iv"),
						cmd.String("format"),
					)
				})
			},
		},
	}
}
