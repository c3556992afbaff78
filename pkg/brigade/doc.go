// Package brigade provides types, interfaces, and helpers for working with the
// Brigade v2 API.
//
// # Overview
//
// The brigade package defines the wire types (Project, Event, Worker, Job,
// Token) and the interfaces of the resource clients (ProjectsClient,
// EventsClient, SessionsClient). A concrete implementation is provided by the
// brigclient package, which wires configuration, transport and
// authentication. Most consumers import brigclient to construct a client and
// then use the interfaces declared here.
//
// Getting a client
//
//	ctx := context.Background()
//	cfg := &brigade.Config{APIAddress: "https://brigade.example.com"}
//
//	cli, err := brigclient.NewWithRootPassword(ctx, cfg, os.Getenv("BRIGADE_ROOT_PASSWORD"))
//	if err != nil { log.Fatal(err) }
//
//	projects, err := cli.Projects().List(ctx, nil, brigade.NewListOptions().WithLimit(20))
//	if err != nil { log.Fatal(err) }
//	_ = projects
//
// # Pagination
//
// List operations return one page at a time. The continuation token of a page
// is passed back through ListOptions to request the next one:
//
//	opts := brigade.NewListOptions().WithLimit(50)
//	for opts != nil {
//	  page, err := cli.Events().List(ctx, nil, opts)
//	  if err != nil { break }
//	  _ = page.Items
//	  opts = page.NextOptions(50)
//	}
//
// # Errors
//
// Responses with a non-2xx status are returned as *ResponseError. Helpers such
// as IsNotFound, IsUnauthorized and IsConflict branch on common cases.
// Failures to reach the server wrap ErrTransport; successful responses that
// cannot be decoded wrap ErrDecode.
package brigade
