// Package modelloader loads the model configuration and constructs
// embedding and chat-completion clients for the configured provider.
package modelloader
