// Package msgkit provides a high-level interface for working with chat
// message sequences: a data model for role-tagged messages, a merger
// that collapses runs of consecutive same-role messages, and an
// in-process session history store. This file re-exports the
// subpackage APIs to provide a clean, centralized entry point.
package msgkit

import (
	"github.com/teilomillet/msgkit/config"
	"github.com/teilomillet/msgkit/history"
	"github.com/teilomillet/msgkit/merge"
	"github.com/teilomillet/msgkit/types"
	"github.com/teilomillet/msgkit/utils"
)

// Re-export the message data model for easier access
type (
	// Message is a single role-tagged message in a conversation.
	// See types.Message for detailed field documentation.
	Message = types.Message

	// Role is the fixed discriminator of a message.
	Role = types.Role

	// Content is the payload of a message: Text or Blocks.
	Content = types.Content

	// Text is plain string content.
	Text = types.Text

	// Blocks is structured content: an ordered sequence of blocks.
	Blocks = types.Blocks

	// Block is one unit of structured content.
	Block = types.Block

	// StringBlock is a content block that is a bare string.
	StringBlock = types.StringBlock

	// ObjectBlock is a structured content block with a "type" field.
	ObjectBlock = types.ObjectBlock

	// MessageError is the typed error raised on malformed input.
	MessageError = types.MessageError

	// Merger collapses runs of consecutive same-role messages.
	//
	// Example usage:
	//   merger := msgkit.NewMerger()
	//   merged, err := merger.Merge(messages)
	Merger = merge.Merger

	// Transformer is a composable pipeline stage over message
	// sequences. A Merger is a Transformer, so it can be chained with
	// other stages:
	//   chain := msgkit.NewChain(msgkit.NewMerger(), myStage)
	Transformer = merge.Transformer

	// Chain applies a fixed sequence of Transformers in order.
	Chain = merge.Chain

	// BatchTransformer applies a Transformer to many message
	// sequences concurrently with rate limiting.
	BatchTransformer = merge.BatchTransformer

	// Store is the session history boundary: a keyed, append-only
	// message log.
	Store = history.Store

	// MemoryStore is the in-process Store implementation with
	// optional token-budget truncation.
	MemoryStore = history.MemoryStore

	// Config holds library-wide defaults. See config.Config.
	Config = config.Config

	// ConfigOption modifies a Config instance.
	ConfigOption = config.ConfigOption

	// LogLevel defines the verbosity of logging output.
	LogLevel = utils.LogLevel

	// Logger is the logging interface used throughout msgkit.
	Logger = utils.Logger
)

// Message role constants
const (
	RoleSystem   = types.RoleSystem
	RoleHuman    = types.RoleHuman
	RoleAI       = types.RoleAI
	RoleTool     = types.RoleTool
	RoleFunction = types.RoleFunction
)

// LogLevel constants define available logging verbosity levels
const (
	LogLevelOff   = utils.LogLevelOff   // Disables all logging
	LogLevelError = utils.LogLevelError // Logs only errors
	LogLevelWarn  = utils.LogLevelWarn  // Logs warnings and errors
	LogLevelInfo  = utils.LogLevelInfo  // Logs info, warnings, and errors
	LogLevelDebug = utils.LogLevelDebug // Logs all messages including debug
)

// Re-export message constructors and helpers
var (
	NewSystemMessage = types.NewSystemMessage
	NewHumanMessage  = types.NewHumanMessage
	NewAIMessage     = types.NewAIMessage
	NewToolMessage   = types.NewToolMessage

	// MessageSchema returns the JSON schema of the message wire format.
	MessageSchema = types.MessageSchema
)

// Re-export the merge API
var (
	// MergeMessageRuns is the eager form: it collapses runs of
	// consecutive same-role, same-name messages in a single pass.
	//
	// Example usage:
	//   merged, err := msgkit.MergeMessageRuns(messages)
	MergeMessageRuns = merge.Runs

	// NewMerger creates the deferred, pipeline-composable form.
	NewMerger = merge.NewMerger

	// NewChain composes Transformers into a sequential pipeline.
	NewChain = merge.NewChain

	// NewBatchTransformer wraps a Transformer for concurrent,
	// rate-limited application across many sequences.
	NewBatchTransformer = merge.NewBatchTransformer

	// WithSeparator overrides the newline joining plain-text runs.
	WithSeparator = merge.WithSeparator

	// WithLogger attaches a logger to a Merger.
	WithLogger = merge.WithLogger
)

// Re-export the history API
var (
	// NewMemoryStore creates the in-process session store.
	NewMemoryStore = history.NewMemoryStore
)

// Re-export configuration functions
var (
	LoadConfig   = config.LoadConfig
	NewConfig    = config.NewConfig
	ApplyOptions = config.ApplyOptions

	SetLogLevel         = config.SetLogLevel
	SetSeparator        = config.SetSeparator
	SetHistoryMaxTokens = config.SetHistoryMaxTokens
	SetTokenizerModel   = config.SetTokenizerModel

	// NewLogger creates the default slog-backed logger.
	NewLogger = utils.NewLogger
)
