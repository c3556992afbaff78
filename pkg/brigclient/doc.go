// Package brigclient provides the primary entry point for constructing a
// platform API client that implements the brigade.Client interface.
//
// It layers address normalization, TLS settings and credential bootstrap on
// top of the resource interfaces and types defined in the brigade package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/brigade-client/pkg/brigade"
//	  "github.com/fivetwenty-io/brigade-client/pkg/brigclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With a token you already have:
//	  cli, err := brigclient.NewWithToken("https://brigade.example.com", "token")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or bootstrap one from the root password:
//	  cli, err = brigclient.NewWithRootPassword(ctx, &brigade.Config{
//	    APIAddress: "https://brigade.example.com",
//	  }, "root-password")
//	  if err != nil { log.Fatal(err) }
//
//	  projects, err := cli.Projects().List(ctx, nil, brigade.NewListOptions().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Credentials
//
// A client is bound to exactly one token for its whole life. Switching
// credentials means building a new client; the root session bootstrap does
// exactly that, using a token-less client for the session request and a
// second client carrying the returned token.
//
// # TLS
//
// Config.AllowInsecureConnections disables certificate verification and is
// meant for local development only. Config.RootCAs adds a PEM bundle to the
// trusted roots instead.
package brigclient
