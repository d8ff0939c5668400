// Package frontend serves the browser client.
//
// Assets come from a Source: a local directory (DirSource) or an object
// storage bucket (BucketSource). The Publisher uploads a local build into the
// bucket.
//
// # HTTP Endpoints
//
//   - GET / : the index file, or a placeholder page when it is missing.
//   - GET /static/* : one asset, 404 when missing.
package frontend
