// Package runtime owns the command-matching pipeline: the command table, the
// dispatcher and the context tying them to the transport, the sinks and the
// control surface. It holds no process-wide state.
package runtime

import (
	"chat-notifier/auth"
	"chat-notifier/contract"
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"chat-notifier/errors"
	"chat-notifier/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const defaultMetricInterval = 5 * time.Second

// Orchestrator is the owned context of the pipeline.
// The transport goroutine only ever calls OnMessage. The control surface calls
// the accessors and mutators, which are safe for concurrent use.
type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	supervisor     contract.ISupervisor
	source         contract.IChatSource
	repository     contract.ICommandRepository
	table          *CommandTable
	users          *auth.ApprovedUsers
	actions        *ActionRegistry
	dispatcher     *Dispatcher
	sinks          []contract.EventSink
	handlers       []event.Handler
	extra          []contract.Worker
	inbound        chan domain.Delivery
	events         chan event.Event
	telemetry      chan event.Event
	sinkTimeout    time.Duration
	metricInterval time.Duration
	connected      bool
}

// NewOrchestrator wires an orchestrator. source and repository may be nil:
// without source no transport worker runs, without repository nothing is persisted.
func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	source contract.IChatSource, repository contract.ICommandRepository,
	actions *ActionRegistry, bufferSize int, sinkTimeout, metricInterval time.Duration) *Orchestrator {
	if metricInterval <= 0 {
		metricInterval = defaultMetricInterval
	}
	events := make(chan event.Event, bufferSize)
	table := NewCommandTable()
	if repository != nil {
		table.WithRepository(repository)
	}
	return &Orchestrator{
		log:            log,
		supervisor:     supervisor,
		source:         source,
		repository:     repository,
		table:          table,
		users:          auth.NewApprovedUsers(),
		actions:        actions,
		dispatcher:     NewDispatcher(log, table, actions, events),
		inbound:        make(chan domain.Delivery, bufferSize),
		events:         events,
		telemetry:      make(chan event.Event, bufferSize),
		sinkTimeout:    sinkTimeout,
		metricInterval: metricInterval,
	}
}

// Add registers sinks receiving every pipeline event. Call before Start.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sinks = append(o.sinks, sinks...)
}

// AddHandlers registers telemetry handlers. Call before Start.
func (o *Orchestrator) AddHandlers(handlers ...event.Handler) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.handlers = append(o.handlers, handlers...)
}

// AddWorkers registers extra workers supervised next to the pipeline. Call before Start.
func (o *Orchestrator) AddWorkers(w ...contract.Worker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.extra = append(o.extra, w...)
}

// Queue reports the inbound channel usage.
func (o *Orchestrator) Queue() (size, capacity int) {
	return len(o.inbound), cap(o.inbound)
}

// Telemetry is the channel read by the telemetry handlers.
func (o *Orchestrator) Telemetry() chan event.Event {
	return o.telemetry
}

// Restore loads the persisted commands and approved users.
// When nothing was persisted yet the defaults are installed and saved.
func (o *Orchestrator) Restore(defaults []domain.Command, defaultUsers []string) error {
	if o.repository == nil {
		o.users.Replace(defaultUsers)
		return o.table.Replace(defaults)
	}

	commands, err := o.repository.LoadCommands()
	if err != nil {
		return fmt.Errorf("loading commands: %w", err)
	}
	if len(commands) == 0 {
		for _, cmd := range defaults {
			if err := o.table.Add(cmd); err != nil {
				return err
			}
		}
	} else if err := o.table.Replace(commands); err != nil {
		return err
	}

	users, err := o.repository.LoadApprovedUsers()
	if err != nil {
		return fmt.Errorf("loading approved users: %w", err)
	}
	if len(users) == 0 {
		users = defaultUsers
	}
	o.users.Replace(users)

	o.log.Info("Configuration restored",
		"commands", len(o.table.List()), "approved_users", len(o.users.List()))
	return nil
}

// OnMessage enqueues a chat message for dispatch. It never blocks: when the
// inbound channel is full the message is dropped and false is returned.
func (o *Orchestrator) OnMessage(msg domain.ChatMessage) bool {
	select {
	case o.inbound <- domain.Delivery{Message: msg, ReceivedAt: time.Now()}:
		return true
	default:
		o.log.Warn("Inbound chat channel full, dropping message", "user", msg.User)
		return false
	}
}

func (o *Orchestrator) ApprovedUsers() []string {
	return o.users.List()
}

func (o *Orchestrator) Commands() []domain.Command {
	return o.table.List()
}

// AddCommand registers a command whose action handle must be known.
func (o *Orchestrator) AddCommand(cmd domain.Command) error {
	if _, err := o.actions.Resolve(cmd.Action); err != nil {
		return err
	}
	return o.table.Add(cmd)
}

func (o *Orchestrator) RemoveCommand(name string) error {
	return o.table.Remove(name)
}

func (o *Orchestrator) RenameCallString(name, callString string) error {
	return o.table.RenameCallString(name, callString)
}

func (o *Orchestrator) AddApprovedUser(user string) error {
	if err := o.users.Add(user); err != nil {
		return err
	}
	return o.saveUsers()
}

func (o *Orchestrator) RemoveApprovedUser(user string) error {
	if err := o.users.Remove(user); err != nil {
		return err
	}
	return o.saveUsers()
}

func (o *Orchestrator) saveUsers() error {
	if o.repository == nil {
		return nil
	}
	return o.repository.SaveApprovedUsers(o.users.List())
}

// Dispatcher exposes the dispatcher for synchronous use (tests, tools).
func (o *Orchestrator) Dispatcher() *Dispatcher {
	return o.dispatcher
}

// ConnectionStatus reports whether the chat transport is connected.
func (o *Orchestrator) ConnectionStatus() bool {
	if o.source == nil {
		return false
	}
	return o.source.Connected()
}

func (o *Orchestrator) Channel() string {
	if o.source == nil {
		return ""
	}
	return o.source.Channel()
}

// ConnectTransport resumes a chat transport stopped by DisconnectTransport.
func (o *Orchestrator) ConnectTransport() error {
	control, ok := o.source.(contract.IChatControl)
	if !ok {
		return errors.ErrMissingCredentials
	}
	return control.Connect()
}

// DisconnectTransport leaves the chat until ConnectTransport.
func (o *Orchestrator) DisconnectTransport() error {
	control, ok := o.source.(contract.IChatControl)
	if !ok {
		return errors.ErrMissingCredentials
	}
	return control.Disconnect()
}

// ConnectionChanged is the status hook handed to the transport.
func (o *Orchestrator) ConnectionChanged(channel string, connected bool) {
	o.mu.Lock()
	changed := o.connected != connected
	o.connected = connected
	o.mu.Unlock()
	if !changed {
		return
	}
	o.log.Info("Chat connection changed", "channel", channel, "connected", connected)
	o.Emit(event.New(event.ConnectionChangedType, event.ConnectionChanged{Channel: channel, Connected: connected}))
}

// Emit pushes an event to the sinks, dropping it when the pipeline is saturated.
func (o *Orchestrator) Emit(e event.Event) {
	select {
	case o.events <- e:
	default:
		o.log.Debug("Pipeline event lost", "type", e.Type)
	}
}

// Start prepares every worker, registers them into the supervisor and blocks
// until the supervisor returns.
func (o *Orchestrator) Start(ctx context.Context) error {
	if o.supervisor == nil {
		return fmt.Errorf("orchestrator started without supervisor")
	}

	// 1. Preparation phase (no lock)
	var transport contract.Worker
	if o.source != nil {
		transport = workers.NewTransportWorker(o.log, o.source, func(msg domain.ChatMessage) {
			o.OnMessage(msg)
		})
	}
	dispatch := workers.NewDispatchWorker(o.log, o.inbound, o.events, o.users, o.dispatcher)
	capacity := workers.NewChannelCapacityWorker(o.log, []workers.NamedChannel{
		{Name: "inbound", Channel: o.inbound},
		{Name: "events", Channel: o.events},
	}, o.telemetry, o.metricInterval)

	// 2. Critical section (short lock)
	o.mu.Lock()
	fanout := workers.NewEventFanout(o.log, append([]contract.EventSink(nil), o.sinks...),
		o.events, o.telemetry, o.sinkTimeout)
	telemetry := workers.NewTelemetryWorker(o.log, o.telemetry, append([]event.Handler(nil), o.handlers...))
	if transport != nil {
		o.supervisor.Add(transport)
	}
	o.supervisor.Add(dispatch, fanout, telemetry, capacity)
	if len(o.extra) > 0 {
		o.supervisor.Add(o.extra...)
	}
	o.mu.Unlock()

	// 3. Execution phase (no lock)
	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// Stop cancels the supervised context. Start returns once every worker,
// transport included, has returned, so sinks can be closed afterwards.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
