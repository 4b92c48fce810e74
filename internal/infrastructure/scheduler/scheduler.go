// Package scheduler ejecuta el escaneo de alertas de forma periódica usando
// expresiones cron.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/inventario-salud/internal/application/alerting"
	"github.com/jhoicas/inventario-salud/pkg/logger"
)

// Scheduler envuelve un cron que dispara ScanUseCase.ScanAll según el spec
// configurado (por defecto cada 15 minutos).
type Scheduler struct {
	cron   *cron.Cron
	scanUC *alerting.ScanUseCase
	log    *logger.Logger
	spec   string
}

// New construye el scheduler. spec es una expresión cron estándar de 5 campos.
func New(scanUC *alerting.ScanUseCase, log *logger.Logger, spec string) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		scanUC: scanUC,
		log:    log,
		spec:   spec,
	}
}

// Start registra el job y arranca el cron. Devuelve error si la expresión es
// inválida.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runScan); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("spec", s.spec).Msg("Scheduler de alertas iniciado")
	return nil
}

// Stop detiene el cron y espera a que termine el job en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("Scheduler de alertas detenido")
}

// runScan ejecuta una corrida del escaneo con timeout propio. Una corrida
// fallida no detiene el cron: se registra y se reintenta en el siguiente tick.
func (s *Scheduler) runScan() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	started := time.Now()
	result, err := s.scanUC.ScanAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Escaneo de alertas falló")
		return
	}
	s.log.Info().
		Int("organizations", result.Organizations).
		Int("transitions", result.Transitions).
		Int("notified", result.Notified).
		Dur("elapsed", time.Since(started)).
		Msg("Escaneo de alertas completado")
}
