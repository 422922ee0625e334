package postgres

import (
	"context"
	"fmt"
)

// Permisos por recurso. Se materializan como filas roles/permissions con
// tabla puente role_permissions; el aprovisionamiento es idempotente y se
// puede correr en cada despliegue.
var rolePermissions = map[string][]string{
	"administrador": {
		"animales.ver", "animales.crear", "animales.editar", "animales.eliminar",
		"movimientos.ver", "movimientos.crear",
		"insumos.ver", "insumos.crear", "insumos.editar", "insumos.eliminar",
		"insumos_movimientos.ver", "insumos_movimientos.crear",
		"protocolos.ver", "protocolos.crear", "protocolos.aprobar",
		"reportes.ver", "usuarios.administrar",
	},
	"investigador": {
		"animales.ver", "movimientos.ver", "movimientos.crear",
		"insumos.ver", "insumos_movimientos.ver",
		"protocolos.ver", "protocolos.crear", "reportes.ver",
	},
	"tecnico": {
		"animales.ver", "movimientos.ver",
		"insumos.ver", "insumos_movimientos.ver", "insumos_movimientos.crear",
		"reportes.ver",
	},
}

// Provisioner siembra roles y permisos base.
type Provisioner struct {
	q Querier
}

func NewProvisioner(q Querier) *Provisioner {
	return &Provisioner{q: q}
}

// Run inserta los roles y permisos faltantes y asegura las asociaciones.
// Ejecutar repetidamente no produce duplicados ni revoca asignaciones
// hechas a mano.
func (p *Provisioner) Run(ctx context.Context) error {
	for role, perms := range rolePermissions {
		if _, err := p.q.Exec(ctx,
			`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, role); err != nil {
			return fmt.Errorf("upsert role %s: %w", role, err)
		}
		for _, perm := range perms {
			if _, err := p.q.Exec(ctx,
				`INSERT INTO permissions (code) VALUES ($1) ON CONFLICT (code) DO NOTHING`, perm); err != nil {
				return fmt.Errorf("upsert permission %s: %w", perm, err)
			}
			if _, err := p.q.Exec(ctx, `
				INSERT INTO role_permissions (role_name, permission_code)
				VALUES ($1, $2) ON CONFLICT DO NOTHING`, role, perm); err != nil {
				return fmt.Errorf("grant %s to %s: %w", perm, role, err)
			}
		}
	}
	return nil
}
