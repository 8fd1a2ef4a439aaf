// Package bedrock is a minimal Amazon Bedrock client built on this module's
// request signer. It covers the Converse and InvokeModel runtime operations,
// ConverseStream event streaming, and the ListFoundationModels control plane
// operation.
//
// The client authenticates with SigV4 by default. Setting Options.BearerToken
// (or loading one with BearerTokenFromEnv) switches to bearer authentication
// and no credentials are required.
//
//	creds, err := credentials.FromEnv()
//	if err != nil {
//		return err
//	}
//	client, err := bedrock.New(bedrock.Options{
//		Region:      creds.Region,
//		Credentials: creds,
//	})
//	if err != nil {
//		return err
//	}
//	out, err := client.Converse(ctx, &bedrock.ConverseInput{
//		ModelID: "amazon.titan-text-express-v1",
//		Messages: []bedrock.Message{
//			{Role: bedrock.RoleUser, Content: []bedrock.ContentBlock{{Text: "Hello"}}},
//		},
//	})
//
// The client is stateless apart from its configuration and is safe for
// concurrent use.
package bedrock
