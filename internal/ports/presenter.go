package ports

import (
	"context"

	"github.com/alejandrodnm/revfx/internal/chart"
	"github.com/alejandrodnm/revfx/internal/domain"
)

// Presenter muestra los resultados al usuario. El decomposer nunca lo llama:
// lo invoca quien quiera ver el resultado.
type Presenter interface {
	// PresentAggregate muestra la tabla de efectos por paso, con totales.
	PresentAggregate(ctx context.Context, agg domain.Aggregate) error

	// PresentChart muestra los datos de un gráfico de contribución.
	PresentChart(ctx context.Context, ch chart.Chart) error
}
