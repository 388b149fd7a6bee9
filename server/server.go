package server

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"

	"echoprobe/commands"
	"echoprobe/utils"

	"github.com/sirupsen/logrus"
)

var kMaxMsg = 4096

// Server is a minimal TCP echo collaborator. Each connection is served by
// reading a chunk, passing it through reply and writing the result back
// until the peer disconnects.
type Server struct {
	listener net.Listener
	address  string
	reply    commands.Reply
	accepted atomic.Int64
	wg       sync.WaitGroup
	ready    chan struct{}
	quitch   chan struct{}
	once     sync.Once
}

func NewServer(address string, reply commands.Reply) *Server {
	if reply == nil {
		reply = commands.Echo
	}
	return &Server{
		address: address,
		reply:   reply,
		ready:   make(chan struct{}),
		quitch:  make(chan struct{}),
	}
}

// Start binds the listener and serves connections in the background.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	s.listener = listener
	s.address = listener.Addr().String()
	utils.Logger.WithField("address", s.address).Debug("echo server listening")
	s.wg.Add(1)
	go s.acceptLoop()
	close(s.ready)
	return nil
}

// Ready is closed once the listener is bound.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// HeyListen starts the server and blocks until Shutdown.
func (s *Server) HeyListen() error {
	if err := s.Start(); err != nil {
		return err
	}
	<-s.quitch
	return nil
}

func (s *Server) Addr() string {
	return s.address
}

// Accepted reports how many connections have been accepted so far.
func (s *Server) Accepted() int {
	return int(s.accepted.Load())
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			utils.Logger.WithError(err).Warn("accept failed")
			continue
		}
		s.accepted.Add(1)
		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	log := utils.Logger.WithField("remote", conn.RemoteAddr().String())
	buf := make([]byte, kMaxMsg)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			return
		}

		response := s.reply(buf[:n])
		if len(response) == 0 {
			continue
		}
		if _, err := conn.Write(response); err != nil {
			log.WithError(err).Warn("write failed")
			return
		}
		log.WithFields(logrus.Fields{"read": n, "written": len(response)}).Debug("replied")
	}
}

// Shutdown stops accepting and waits for open connections to finish.
func (s *Server) Shutdown() {
	s.once.Do(func() {
		close(s.quitch)
		if s.listener != nil {
			s.listener.Close()
		}
	})
	s.wg.Wait()
}
