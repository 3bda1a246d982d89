// Package firestore implements storage.DocumentStore on Cloud Firestore.
//
// The client is created through the Firebase Admin SDK from a service-account
// file (or Application Default Credentials) and each storage.Batch maps to a
// single Firestore WriteBatch, so a commit either lands every record or none.
// Set the FIRESTORE_EMULATOR_HOST environment variable to target the local emulator.
package firestore
