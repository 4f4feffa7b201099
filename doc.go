/*
Package secschema serves the security schema tables from per-kind datastores.

A Backing holds one datastore.DataStore per entity kind and exposes the typed
read tables navigation getters expect. Open builds one from configuration,
selecting the in-memory, DynamoDB or Redis datastores:

	cfg, _ := config.Load("secschema.yaml")
	backing, err := secschema.Open(ctx, cfg, secschema.WithLogger(logger))
	if err != nil {
	    return err
	}
	defer backing.Close()

	reg := registry.New(registry.WithLogger(logger))
	reg.SetBacking(backing)

	clusters, _ := secschema.StoreOf[*secmodels.ClusterBuff](backing, secmodels.ClassCodeCluster)
	err = clusters.Put(ctx, cluster)
	owner, err := tenant.RequiredOwnerCluster(ctx, reg)
*/
package secschema
